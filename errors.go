package bitvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec/alloc"
)

var (
	// ErrInvalidLength is returned when a requested bit or byte count is
	// negative or above the maximum.
	ErrInvalidLength = errors.New("invalid length")
	// ErrIndexOutOfRange is returned by checked access beyond [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyContainer is returned by PopBack, Front and Back on an empty vector.
	ErrEmptyContainer = errors.New("empty container")
	// ErrSizeMismatch is returned by boolean algebra on operands of different
	// or zero length.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrCapacityExceeded is returned when growth would pass the maximum size.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrInvalidFormat is returned by Parse on characters other than '0' and '1'.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrOutOfMemory is returned (wrapped) when the allocator fails.
	ErrOutOfMemory = alloc.ErrOutOfMemory
)

// IndexError reports a checked access outside [0, Size).
//
// It matches ErrIndexOutOfRange with errors.Is.
type IndexError struct {
	Op    string
	Index uint64
	Size  uint64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitvec: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// SizeMismatchError reports boolean algebra on operands of different or zero length.
//
// It matches ErrSizeMismatch with errors.Is.
type SizeMismatchError struct {
	Op    string
	Left  uint64
	Right uint64
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("bitvec: %s: size mismatch: %d vs %d bits", e.Op, e.Left, e.Right)
}

func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }

// LengthError reports a size request above the vector's ceiling.
//
// The cause (ErrInvalidLength or ErrCapacityExceeded) can be accessed via errors.Unwrap.
type LengthError struct {
	Op        string
	Requested uint64
	Max       uint64
	Unit      string
	cause     error
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("bitvec: %s: %v: requested %d %s, max %d", e.Op, e.cause, e.Requested, e.Unit, e.Max)
}

func (e *LengthError) Unwrap() error { return e.cause }

func emptyError(op string) error {
	return fmt.Errorf("bitvec: %s: %w", op, ErrEmptyContainer)
}

func allocError(op string, bytes int, err error) error {
	return fmt.Errorf("bitvec: %s: allocate %d bytes: %w", op, bytes, err)
}
