package entity

import (
	"errors"
	"fmt"
)

// LikeCounter is the single page-wide like total.
type LikeCounter struct {
	TotalLikes int64 `json:"totalLikes" bson:"totalLikes"`
}

// Storage operations reported in StorageError.Op.
const (
	StorageOpInit      = "init"
	StorageOpRead      = "read"
	StorageOpIncrement = "increment"
)

// ErrMalformedState is returned when the persisted counter cannot be decoded
// or holds a value that a LikeCounter can never have.
var ErrMalformedState = errors.New("malformed like counter state")

// StorageError wraps any failure to read or write the persisted counter.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("like counter storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err carries a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// Validate checks the counter invariant.
func (c *LikeCounter) Validate() error {
	if c.TotalLikes < 0 {
		return fmt.Errorf("%w: negative totalLikes %d", ErrMalformedState, c.TotalLikes)
	}
	return nil
}
