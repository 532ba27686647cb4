package fixedarray

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Array operations. Callers compare against them
// with errors.Is; the concrete *IndexError and *CapacityError values carry the
// details and are reachable with errors.As.
var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidCapacity  = errors.New("invalid capacity")
)

// IndexError reports an index argument outside the bound valid for Op.
// The valid range is [Low, High); High is exclusive.
type IndexError struct {
	Op    string
	Index int
	Low   int
	High  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d not in [%d, %d): %v", e.Op, e.Index, e.Low, e.High, ErrIndexOutOfRange)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// CapacityError reports an insert attempted on a full array.
type CapacityError struct {
	Op       string
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: array full at %d slots: %v", e.Op, e.Capacity, ErrCapacityExceeded)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

func indexError(op string, index, low, high int) error {
	return &IndexError{Op: op, Index: index, Low: low, High: high}
}
