// Package scenario loads YAML-described operation sequences and replays them
// against a fixed-capacity array.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Op names one array operation.
type Op string

const (
	OpGet       Op = "get"
	OpAt        Op = "at"
	OpSet       Op = "set"
	OpRemoveEnd Op = "remove_end"
	OpRemoveAt  Op = "remove_at"
	OpInsertEnd Op = "insert_end"
	OpInsertAt  Op = "insert_at"
	OpTraverse  Op = "traverse"
	OpClear     Op = "clear"
)

func (o Op) valid() bool {
	switch o {
	case OpGet, OpAt, OpSet, OpRemoveEnd, OpRemoveAt, OpInsertEnd, OpInsertAt, OpTraverse, OpClear:
		return true
	}
	return false
}

// Expected error kinds a step may declare.
const (
	KindNone             = ""
	KindIndexOutOfRange  = "index_out_of_range"
	KindCapacityExceeded = "capacity_exceeded"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is one array and the steps applied to it.
type Scenario struct {
	Name string `yaml:"name"`

	// Capacity 0 means "use the configured default".
	Capacity int     `yaml:"capacity"`
	Initial  []int64 `yaml:"initial"`
	Steps    []Step  `yaml:"steps"`
}

// Step is a single operation. Index and Value are ignored by ops that do
// not take them.
type Step struct {
	Op          Op     `yaml:"op"`
	Index       int    `yaml:"index"`
	Value       int64  `yaml:"value"`
	ExpectError string `yaml:"expect_error"`
}

func (s Step) String() string {
	switch s.Op {
	case OpGet, OpAt, OpRemoveAt:
		return fmt.Sprintf("%s(%d)", s.Op, s.Index)
	case OpSet, OpInsertAt:
		return fmt.Sprintf("%s(%d, %d)", s.Op, s.Index, s.Value)
	case OpInsertEnd:
		return fmt.Sprintf("%s(%d)", s.Op, s.Value)
	default:
		return fmt.Sprintf("%s()", s.Op)
	}
}

// Validate checks ops and expected error kinds. Index bounds are not checked
// here; out-of-range steps are how scenarios exercise the error paths.
func (sc *Scenario) Validate() error {
	if sc.Capacity < 0 {
		return fmt.Errorf("%w: capacity %d", ErrInvalidScenario, sc.Capacity)
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: %q has no steps", ErrInvalidScenario, sc.Name)
	}
	for i, st := range sc.Steps {
		if !st.Op.valid() {
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScenario, i, st.Op)
		}
		switch st.ExpectError {
		case KindNone, KindIndexOutOfRange, KindCapacityExceeded:
		default:
			return fmt.Errorf("%w: step %d: unknown expect_error %q", ErrInvalidScenario, i, st.ExpectError)
		}
	}
	return nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}
