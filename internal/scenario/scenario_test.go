package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/marcodamonte/staticarrays/fixedarray"
)

const insertMiddleDoc = `
name: insert in the middle
capacity: 5
initial: [1, 2, 3, 4]
steps:
  - op: insert_at
    index: 1
    value: 9
  - op: insert_end
    value: 10
    expect_error: capacity_exceeded
  - op: traverse
`

// ── Parsing ──────────────────────────────────────────────────────────────────

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(insertMiddleDoc))
	require.NoError(t, err)

	want := Scenario{
		Name:     "insert in the middle",
		Capacity: 5,
		Initial:  []int64{1, 2, 3, 4},
		Steps: []Step{
			{Op: OpInsertAt, Index: 1, Value: 9},
			{Op: OpInsertEnd, Value: 10, ExpectError: KindCapacityExceeded},
			{Op: OpTraverse},
		},
	}
	if diff := cmp.Diff(want, sc); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown op":         "steps: [{op: explode}]",
		"unknown error kind": "steps: [{op: get, expect_error: on_fire}]",
		"negative capacity":  "capacity: -1\nsteps: [{op: get}]",
		"no steps":           "name: idle",
		"bad yaml":           "steps: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insert.yaml")
	require.NoError(t, os.WriteFile(path, []byte(insertMiddleDoc), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "insert in the middle", sc.Name)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "insert_at(1, 9)", Step{Op: OpInsertAt, Index: 1, Value: 9}.String())
	assert.Equal(t, "remove_at(2)", Step{Op: OpRemoveAt, Index: 2}.String())
	assert.Equal(t, "insert_end(7)", Step{Op: OpInsertEnd, Value: 7}.String())
	assert.Equal(t, "remove_end()", Step{Op: OpRemoveEnd}.String())
}

// ── Running ──────────────────────────────────────────────────────────────────

func TestRunInsertMiddle(t *testing.T) {
	sc, err := Parse([]byte(insertMiddleDoc))
	require.NoError(t, err)

	var seen []int
	rep, err := NewRunner(nil, 5).Run(sc, func(r StepResult) { seen = append(seen, r.Index) })
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, []int64{1, 9, 2, 3, 4}, rep.Final)
	assert.Equal(t, "1 9 2 3 4", rep.Steps[2].Output)
	assert.Equal(t, 5, rep.Steps[0].Len)
	assert.EqualValues(t, 3, rep.Steps[0].Stats.Shifts)

	_, err = uuid.Parse(rep.RunID)
	assert.NoError(t, err)
}

func TestRunEveryOp(t *testing.T) {
	sc := Scenario{
		Name:     "tour",
		Capacity: 5,
		Initial:  []int64{1, 2, 3, 4, 5},
		Steps: []Step{
			{Op: OpGet, Index: 4},
			{Op: OpRemoveEnd},
			{Op: OpGet, Index: 4},
			{Op: OpGet, Index: 5, ExpectError: KindIndexOutOfRange},
			{Op: OpRemoveAt, Index: 1},
			{Op: OpAt, Index: 1},
			{Op: OpAt, Index: 2},
			{Op: OpAt, Index: 4, ExpectError: KindIndexOutOfRange},
			{Op: OpSet, Index: 0, Value: 0},
			{Op: OpRemoveAt, Index: 9, ExpectError: KindIndexOutOfRange},
			{Op: OpClear},
			{Op: OpRemoveEnd},
		},
	}

	rep, err := NewRunner(nil, 5).Run(sc, nil)
	require.NoError(t, err)

	outputs := make([]string, len(rep.Steps))
	for i, r := range rep.Steps {
		outputs[i] = r.Output
	}
	assert.Equal(t, []string{"5", "5", "_", "", "2", "3", "4", "", "", "", "", "noop"}, outputs)
	assert.Empty(t, rep.Final)

	// After set(0, 0) the zero is a present value, not an empty slot.
	assert.Equal(t, fixedarray.Slot[int64]{Value: 0, Present: true}, rep.Steps[8].Slots[0])
}

func TestRunStopsOnMismatch(t *testing.T) {
	sc := Scenario{
		Name:     "overflow",
		Capacity: 1,
		Steps: []Step{
			{Op: OpInsertEnd, Value: 1},
			{Op: OpInsertEnd, Value: 2},
			{Op: OpTraverse},
		},
	}

	core, logs := observer.New(zapcore.InfoLevel)
	rep, err := NewRunner(zap.New(core), 5).Run(sc, nil)
	require.ErrorIs(t, err, ErrUnexpectedOutcome)
	require.NotNil(t, rep)
	assert.Len(t, rep.Steps, 2)
	assert.Nil(t, rep.Final)

	mismatch := logs.FilterMessage("step outcome mismatch").All()
	require.Len(t, mismatch, 1)
	assert.Equal(t, KindCapacityExceeded, mismatch[0].ContextMap()["got"])
	assert.Equal(t, rep.RunID, mismatch[0].ContextMap()["run_id"])
}

func TestRunUsesDefaultCapacity(t *testing.T) {
	sc := Scenario{Name: "defaults", Steps: []Step{{Op: OpInsertEnd, Value: 1}}}

	rep, err := NewRunner(nil, 3).Run(sc, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Capacity)
	assert.Len(t, rep.Steps[0].Slots, 3)
}

func TestRunRejectsOversizedInitial(t *testing.T) {
	sc := Scenario{
		Name:     "too big",
		Capacity: 2,
		Initial:  []int64{1, 2, 3},
		Steps:    []Step{{Op: OpTraverse}},
	}

	_, err := NewRunner(nil, 5).Run(sc, nil)
	require.ErrorIs(t, err, fixedarray.ErrCapacityExceeded)
}

func TestRunLogsRejectionsAtDebug(t *testing.T) {
	sc := Scenario{
		Name:     "debug",
		Capacity: 1,
		Initial:  []int64{1},
		Steps:    []Step{{Op: OpInsertAt, Index: 0, Value: 2, ExpectError: KindCapacityExceeded}},
	}

	core, logs := observer.New(zapcore.DebugLevel)
	_, err := NewRunner(zap.New(core), 5).Run(sc, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("fixedarray: operation rejected").Len())
}

func TestKind(t *testing.T) {
	arr, err := fixedarray.New[int64](0)
	require.NoError(t, err)

	assert.Equal(t, KindNone, Kind(nil))
	assert.Equal(t, KindCapacityExceeded, Kind(arr.InsertEnd(1)))
	_, err = arr.Get(0)
	assert.Equal(t, KindIndexOutOfRange, Kind(err))
}
