package main

import (
	"errors"
	"fmt"

	"github.com/marcodamonte/staticarrays/fixedarray"
	"github.com/marcodamonte/staticarrays/internal/render"
)

// walkthroughCapacity is fixed so the full-array demos line up regardless of
// the configured scenario default.
const walkthroughCapacity = 5

// Each demo builds its own array; nothing is shared between them.
func (a *app) walkthrough() error {
	demos := []struct {
		title string
		run   func() error
	}{
		{"Access — O(1) address arithmetic, empty slots", a.demoAccess},
		{"Traversal — visit the present prefix in order, O(n)", a.demoTraverse},
		{"Remove end — empty the last slot, O(1)", a.demoRemoveEnd},
		{"Remove middle — shift left, O(n)", a.demoRemoveMiddle},
		{"Insert end — fill the first empty slot, O(1)", a.demoInsertEnd},
		{"Insert middle — shift right from the back, O(n)", a.demoInsertMiddle},
		{"Cost — shifts grow with distance from the end", a.demoCost},
	}

	for _, d := range demos {
		a.section(d.title)
		if err := d.run(); err != nil {
			return fmt.Errorf("%s: %w", d.title, err)
		}
	}
	return nil
}

func (a *app) newArray(values ...int) (*fixedarray.Array[int], error) {
	return fixedarray.From(walkthroughCapacity, values, fixedarray.WithLogger(a.logger))
}

func (a *app) show(label string, arr *fixedarray.Array[int]) {
	fmt.Fprintf(a.out, "  %s  len=%d cap=%d\n%s\n", label, arr.Len(), arr.Cap(), render.Slots(arr.Slots(), a.render))
}

func (a *app) demoAccess() error {
	arr, err := a.newArray(1, 2, 3, 4)
	if err != nil {
		return err
	}
	a.show("arr", arr)

	// ── Get covers every slot ────────────────────────────────────────────────
	// address(i) = base + i*size, so any slot is one step away.
	for _, i := range []int{0, 3, arr.Cap() - 1} {
		s, err := arr.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "  Get(%d) = %v  present=%t\n", i, s, s.Present)
	}

	// ── Out of range is an error, not a crash ────────────────────────────────
	_, err = arr.Get(arr.Cap())
	var ie *fixedarray.IndexError
	if errors.As(err, &ie) {
		fmt.Fprintf(a.out, "  Get(%d) → %v\n", ie.Index, err)
	}
	return nil
}

func (a *app) demoTraverse() error {
	arr, err := a.newArray(1, 2, 3, 4, 5)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, "  for i, v := range arr.All():")
	for i, v := range arr.All() {
		fmt.Fprintf(a.out, " [%d]=%d", i, v)
	}
	fmt.Fprintln(a.out)

	// The sequence is restartable: ranging again starts from slot 0.
	sum := 0
	for v := range arr.Values() {
		sum += v
	}
	fmt.Fprintf(a.out, "  second pass, sum = %d  (%s)\n", sum, render.Summary(arr.Len(), arr.Cap(), arr.Stats()))
	return nil
}

func (a *app) demoRemoveEnd() error {
	arr, err := a.newArray(1, 2, 3, 4, 5)
	if err != nil {
		return err
	}
	a.show("before", arr)

	v, _ := arr.RemoveEnd()
	a.show(fmt.Sprintf("RemoveEnd() = %d", v), arr)

	// On an empty array RemoveEnd is a no-op.
	empty, err := a.newArray()
	if err != nil {
		return err
	}
	_, ok := empty.RemoveEnd()
	fmt.Fprintf(a.out, "  RemoveEnd() on empty: ok=%t len=%d\n", ok, empty.Len())
	return nil
}

func (a *app) demoRemoveMiddle() error {
	arr, err := a.newArray(1, 2, 3, 4, 5)
	if err != nil {
		return err
	}
	a.show("before", arr)

	// ── Shift left ───────────────────────────────────────────────────────────
	// Slots index+1..len-1 move one to the left; the stale tail is emptied.
	v, err := arr.RemoveAt(1)
	if err != nil {
		return err
	}
	a.show(fmt.Sprintf("RemoveAt(1) = %d", v), arr)
	fmt.Fprintf(a.out, "  %s\n", render.Summary(arr.Len(), arr.Cap(), arr.Stats()))

	if _, err := arr.RemoveAt(arr.Len()); err != nil {
		fmt.Fprintf(a.out, "  RemoveAt(%d) → %v\n", arr.Len(), err)
	}
	return nil
}

func (a *app) demoInsertEnd() error {
	arr, err := a.newArray(1, 2, 3, 4)
	if err != nil {
		return err
	}
	a.show("before", arr)

	if err := arr.InsertEnd(9); err != nil {
		return err
	}
	a.show("InsertEnd(9)", arr)

	// ── Full array: rejected, nothing written ────────────────────────────────
	if err := arr.InsertEnd(10); errors.Is(err, fixedarray.ErrCapacityExceeded) {
		fmt.Fprintf(a.out, "  InsertEnd(10) → %v\n", err)
	}
	return nil
}

func (a *app) demoInsertMiddle() error {
	arr, err := a.newArray(1, 2, 3, 4)
	if err != nil {
		return err
	}
	a.show("before", arr)

	// ── Shift right, last element first ──────────────────────────────────────
	// Going front to back would overwrite slot i+1 before it has been moved.
	if err := arr.InsertAt(1, 9); err != nil {
		return err
	}
	a.show("InsertAt(1, 9)", arr)

	// A full array refuses the insert instead of dropping its last element.
	if err := arr.InsertAt(0, 7); errors.Is(err, fixedarray.ErrCapacityExceeded) {
		fmt.Fprintf(a.out, "  InsertAt(0, 7) → %v\n", err)
		a.show("unchanged", arr)
	}
	return nil
}

func (a *app) demoCost() error {
	for _, idx := range []int{4, 2, 0} {
		arr, err := a.newArray(1, 2, 3, 4, 5)
		if err != nil {
			return err
		}
		if _, err := arr.RemoveAt(idx); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "  RemoveAt(%d): shifts=%d\n", idx, arr.Stats().Shifts)
	}
	for _, idx := range []int{4, 2, 0} {
		arr, err := a.newArray(1, 2, 3, 4)
		if err != nil {
			return err
		}
		if err := arr.InsertAt(idx, 9); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "  InsertAt(%d, 9): shifts=%d\n", idx, arr.Stats().Shifts)
	}
	return nil
}
