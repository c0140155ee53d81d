package concise

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by query and iterator operations.
var (
	// ErrEmpty is returned by First and by iterator Next calls made past
	// the end of the sequence.
	ErrEmpty = errors.New("concise: set is empty")

	// ErrConcurrentModification is returned by an iterator when the
	// underlying ConciseSet has been mutated since the iterator was
	// created. Detection is best-effort: it catches same-goroutine
	// mutation, not races across goroutines.
	ErrConcurrentModification = errors.New("concise: concurrent modification")

	// ErrUnsupported is returned by operations an iterator does not
	// implement, such as Remove.
	ErrUnsupported = errors.New("concise: unsupported operation")

	// errNotAscending is wrapped by FromSortedIter when its input is not
	// strictly increasing.
	errNotAscending = errors.New("concise: values are not strictly ascending")

	// ErrOutOfRange is the sentinel to compare against with errors.Is;
	// the concrete error is always an *OutOfRangeError carrying the
	// offending value.
	ErrOutOfRange = errors.New("concise: value out of range")
)

// OutOfRangeError reports that a value fell outside [0, maxAllowed].
type OutOfRangeError struct {
	Value int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("concise: value %d out of range [0, %d]", e.Value, maxAllowed)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NotAscendingError reports that FromSortedIter's input broke strict
// ascending order at Value (following Previous).
type NotAscendingError struct {
	Previous int
	Value    int
}

func (e *NotAscendingError) Error() string {
	return fmt.Sprintf("concise: %d does not follow %d in strictly ascending order", e.Value, e.Previous)
}

func (e *NotAscendingError) Is(target error) bool {
	return target == errNotAscending
}
