// Package fixedarray provides a fixed-capacity array: one block of slots
// allocated at construction, a contiguous prefix of present elements, and the
// classic shifting insert and remove operations on top of it.
//
// Layout of an Array with capacity 5 and length 3:
//
//	 0   1   2   3   4
//	[1] [2] [3] [_] [_]
//	└─ present ─┘ └empty┘
//
// Slots at or beyond Len() are empty. Emptiness is an explicit flag on the
// slot, so a stored 0 is never confused with a missing value.
//
// An Array is not safe for concurrent use. Callers sharing one across
// goroutines must add their own locking.
package fixedarray

import (
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Element is the set of fixed-width value types an Array can hold.
type Element interface {
	constraints.Integer | constraints.Float
}

// Slot is one storage cell. A slot that is not Present is the empty sentinel;
// its Value is the zero value and carries no meaning.
type Slot[T Element] struct {
	Value   T
	Present bool
}

// String renders the slot the way an observer sees it: the value, or "_".
func (s Slot[T]) String() string {
	if !s.Present {
		return "_"
	}
	return fmt.Sprint(s.Value)
}

// Option configures an Array at construction time.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger attaches a logger. Rejected operations are logged at debug level.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Array is a fixed-capacity container of T.
//
// Lifecycle:
//
//	arr, _ := fixedarray.New[int](5)
//	arr.InsertEnd(1)       // O(1)
//	arr.InsertAt(0, 7)     // O(n) shift right
//	arr.RemoveAt(0)        // O(n) shift left
//	arr.RemoveEnd()        // O(1)
type Array[T Element] struct {
	slots  []Slot[T] // len(slots) is the capacity and never changes
	length int
	stats  Stats
	log    *zap.Logger
}

// New allocates an Array with capacity slots, all empty.
// Capacity 0 is valid; every insert into it fails with ErrCapacityExceeded.
func New[T Element](capacity int, opts ...Option) (*Array[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("new array with capacity %d: %w", capacity, ErrInvalidCapacity)
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Array[T]{
		slots: make([]Slot[T], capacity),
		log:   o.logger,
	}, nil
}

// From allocates an Array with the given capacity and appends values in
// order. It fails with ErrCapacityExceeded if values do not fit.
func From[T Element](capacity int, values []T, opts ...Option) (*Array[T], error) {
	a, err := New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) > capacity {
		return nil, fmt.Errorf("from %d values: %w", len(values), &CapacityError{Op: "from", Capacity: capacity})
	}
	for _, v := range values {
		a.slots[a.length] = Slot[T]{Value: v, Present: true}
		a.length++
	}
	a.stats = Stats{}
	return a, nil
}

// Len returns the number of present elements.
func (a *Array[T]) Len() int { return a.length }

// Cap returns the fixed number of slots.
func (a *Array[T]) Cap() int { return len(a.slots) }

func (a *Array[T]) IsEmpty() bool { return a.length == 0 }
func (a *Array[T]) IsFull() bool  { return a.length == len(a.slots) }

// Get returns the slot at index in O(1). Any index in [0, Cap()) is valid;
// slots beyond Len() come back as the empty sentinel.
func (a *Array[T]) Get(index int) (Slot[T], error) {
	if index < 0 || index >= len(a.slots) {
		return Slot[T]{}, a.reject(indexError("get", index, 0, len(a.slots)))
	}
	a.stats.Reads++
	return a.slots[index], nil
}

// At returns the present value at index. Unlike Get, index must be in
// [0, Len()).
func (a *Array[T]) At(index int) (T, error) {
	if index < 0 || index >= a.length {
		var zero T
		return zero, a.reject(indexError("at", index, 0, a.length))
	}
	a.stats.Reads++
	return a.slots[index].Value, nil
}

// Set overwrites the present value at index in O(1). Length is unchanged.
func (a *Array[T]) Set(index int, v T) error {
	if index < 0 || index >= a.length {
		return a.reject(indexError("set", index, 0, a.length))
	}
	a.slots[index].Value = v
	a.stats.Writes++
	return nil
}

// All yields (index, value) for every present element in index order.
// The sequence is lazy and may be ranged over any number of times.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			a.stats.Reads++
			if !yield(i, a.slots[i].Value) {
				return
			}
		}
	}
}

// Values yields every present element in index order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// RemoveEnd empties the last present slot in O(1) and returns its value.
// On an empty array it does nothing and reports false.
func (a *Array[T]) RemoveEnd() (T, bool) {
	if a.length == 0 {
		var zero T
		return zero, false
	}
	last := a.slots[a.length-1].Value
	a.slots[a.length-1] = Slot[T]{}
	a.length--
	return last, true
}

// RemoveAt removes the element at index in [0, Len()) and returns it.
// Every element after index moves one slot left, in ascending order, and the
// slot that held the old last element is emptied. O(n) for index 0, O(1) for
// the last index.
func (a *Array[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= a.length {
		var zero T
		return zero, a.reject(indexError("remove", index, 0, a.length))
	}

	removed := a.slots[index].Value
	for i := index + 1; i < a.length; i++ {
		a.slots[i-1] = a.slots[i]
		a.stats.Shifts++
	}
	// The tail still holds a stale copy of the old last element.
	a.slots[a.length-1] = Slot[T]{}
	a.length--
	return removed, nil
}

// InsertEnd writes v into the first empty slot in O(1). A full array is left
// untouched and ErrCapacityExceeded is returned.
func (a *Array[T]) InsertEnd(v T) error {
	if a.IsFull() {
		return a.reject(&CapacityError{Op: "insert end", Capacity: len(a.slots)})
	}
	a.slots[a.length] = Slot[T]{Value: v, Present: true}
	a.length++
	a.stats.Writes++
	return nil
}

// InsertAt writes v at index in [0, Len()], moving index..Len()-1 one slot
// right first. A full array is rejected with ErrCapacityExceeded before any
// slot moves; the last element is never dropped to make room.
func (a *Array[T]) InsertAt(index int, v T) error {
	if a.IsFull() {
		return a.reject(&CapacityError{Op: "insert", Capacity: len(a.slots)})
	}
	if index < 0 || index > a.length {
		return a.reject(indexError("insert", index, 0, a.length+1))
	}

	// Descending: an ascending copy would overwrite values before moving them.
	for i := a.length - 1; i >= index; i-- {
		a.slots[i+1] = a.slots[i]
		a.stats.Shifts++
	}
	a.slots[index] = Slot[T]{Value: v, Present: true}
	a.length++
	a.stats.Writes++
	return nil
}

// Clear empties every slot. The storage itself is kept.
func (a *Array[T]) Clear() {
	for i := range a.length {
		a.slots[i] = Slot[T]{}
	}
	a.length = 0
}

// Slots returns a copy of all Cap() slots, present and empty.
func (a *Array[T]) Slots() []Slot[T] {
	out := make([]Slot[T], len(a.slots))
	copy(out, a.slots)
	return out
}

// ToSlice returns a copy of the present elements.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.length)
	for i := range a.length {
		out[i] = a.slots[i].Value
	}
	return out
}

// String renders every slot, e.g. "[1 2 3 4 _]".
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range a.slots {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array[T]) reject(err error) error {
	a.stats.Rejected++
	a.log.Debug("fixedarray: operation rejected",
		zap.Error(err),
		zap.Int("len", a.length),
		zap.Int("cap", len(a.slots)),
	)
	return err
}
