package storage

import "fmt"

// IOError reports a filesystem failure during a storage operation. The
// collection's prior on-disk state is untouched when an IOError is returned
// from Store.
type IOError struct {
	Op   string // the failed operation: "read", "write", "rename", "mkdir", "lock", ...
	Path string
	Err  error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error
func (e *IOError) Unwrap() error {
	return e.Err
}

// CorruptError indicates that a collection file's contents are not a valid
// JSON array of objects.
type CorruptError struct {
	Err error
}

// Error implements the error interface
func (e *CorruptError) Error() string {
	return fmt.Sprintf("storage: corrupt collection data: %v", e.Err)
}

// Unwrap returns the underlying decode error
func (e *CorruptError) Unwrap() error {
	return e.Err
}
