package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcodamonte/staticarrays/fixedarray"
)

// ErrUnexpectedOutcome is returned when a step's error does not match its
// expect_error.
var ErrUnexpectedOutcome = errors.New("unexpected step outcome")

// StepResult is what one step did to the array.
type StepResult struct {
	Index  int
	Step   Step
	Output string // value read or removed; empty for pure writes
	Err    error
	Slots  []fixedarray.Slot[int64]
	Len    int
	Stats  fixedarray.Stats
}

// Report summarizes a completed run.
type Report struct {
	RunID    string
	Name     string
	Capacity int
	Steps    []StepResult
	Final    []int64
}

// Runner replays scenarios. The zero value is not usable; call NewRunner.
type Runner struct {
	logger          *zap.Logger
	defaultCapacity int
}

// NewRunner returns a Runner. A nil logger discards output.
func NewRunner(logger *zap.Logger, defaultCapacity int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, defaultCapacity: defaultCapacity}
}

// Run builds the scenario's array and applies every step in order, calling
// observe (if non-nil) after each one. It stops at the first step whose
// outcome does not match ExpectError and returns ErrUnexpectedOutcome along
// with the partial report.
func (r *Runner) Run(sc Scenario, observe func(StepResult)) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	capacity := sc.Capacity
	if capacity == 0 {
		capacity = r.defaultCapacity
	}

	rep := &Report{RunID: uuid.NewString(), Name: sc.Name, Capacity: capacity}
	log := r.logger.With(zap.String("run_id", rep.RunID), zap.String("scenario", sc.Name))

	arr, err := fixedarray.From(capacity, sc.Initial, fixedarray.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("scenario %q initial values: %w", sc.Name, err)
	}
	log.Info("scenario started", zap.Int("capacity", capacity), zap.Int("initial", len(sc.Initial)))

	for i, st := range sc.Steps {
		out, stepErr := apply(arr, st)
		res := StepResult{
			Index:  i,
			Step:   st,
			Output: out,
			Err:    stepErr,
			Slots:  arr.Slots(),
			Len:    arr.Len(),
			Stats:  arr.Stats(),
		}
		rep.Steps = append(rep.Steps, res)
		if observe != nil {
			observe(res)
		}

		if got := Kind(stepErr); got != st.ExpectError {
			log.Error("step outcome mismatch",
				zap.Int("step", i),
				zap.Stringer("op", st),
				zap.String("want", st.ExpectError),
				zap.String("got", got),
				zap.Error(stepErr),
			)
			return rep, fmt.Errorf("%w: step %d %s: want %q, got %q", ErrUnexpectedOutcome, i, st, st.ExpectError, got)
		}
		log.Debug("step applied", zap.Int("step", i), zap.Stringer("op", st), zap.Int("len", arr.Len()))
	}

	rep.Final = arr.ToSlice()
	log.Info("scenario finished", zap.Int("steps", len(sc.Steps)), zap.Int("len", arr.Len()))
	return rep, nil
}

// Kind maps an array error onto the expect_error vocabulary.
func Kind(err error) string {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, fixedarray.ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, fixedarray.ErrCapacityExceeded):
		return KindCapacityExceeded
	default:
		return err.Error()
	}
}

func apply(arr *fixedarray.Array[int64], st Step) (string, error) {
	switch st.Op {
	case OpGet:
		s, err := arr.Get(st.Index)
		if err != nil {
			return "", err
		}
		return s.String(), nil
	case OpAt:
		v, err := arr.At(st.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case OpSet:
		return "", arr.Set(st.Index, st.Value)
	case OpRemoveEnd:
		v, ok := arr.RemoveEnd()
		if !ok {
			return "noop", nil
		}
		return fmt.Sprint(v), nil
	case OpRemoveAt:
		v, err := arr.RemoveAt(st.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case OpInsertEnd:
		return "", arr.InsertEnd(st.Value)
	case OpInsertAt:
		return "", arr.InsertAt(st.Index, st.Value)
	case OpTraverse:
		var parts []string
		for v := range arr.Values() {
			parts = append(parts, fmt.Sprint(v))
		}
		return strings.Join(parts, " "), nil
	case OpClear:
		arr.Clear()
		return "", nil
	}
	return "", fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, st.Op)
}
