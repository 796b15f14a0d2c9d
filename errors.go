package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when a Partition is used after Close.
	ErrClosed = errors.New("partition is closed")
)

// ErrInvalidItem indicates an item outside the universe [0, Size).
type ErrInvalidItem struct {
	Item int
	Size int
}

func (e *ErrInvalidItem) Error() string {
	return fmt.Sprintf("invalid item: %d not in [0, %d)", e.Item, e.Size)
}

// ErrDuplicateItem indicates an item listed twice in an initial universe.
type ErrDuplicateItem struct {
	Item int
}

func (e *ErrDuplicateItem) Error() string {
	return fmt.Sprintf("duplicate item: %d", e.Item)
}

// ErrInvalidSubset indicates a subset id that was never allocated.
type ErrInvalidSubset struct {
	ID    int
	Count int
}

func (e *ErrInvalidSubset) Error() string {
	return fmt.Sprintf("invalid subset: %d not in [0, %d)", e.ID, e.Count)
}

// ErrInvalidUniverse indicates an invalid universe size.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidUniverse struct {
	Size  int
	cause error
}

func (e *ErrInvalidUniverse) Error() string {
	return fmt.Sprintf("invalid universe size: %d", e.Size)
}

func (e *ErrInvalidUniverse) Unwrap() error { return e.cause }
