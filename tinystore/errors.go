package tinystore

import "errors"

var (
	// ErrNoInsert is returned by LastInsertID when no insert has been
	// performed through the collection handle yet.
	ErrNoInsert = errors.New("tinystore: no insert performed on this collection handle")

	// ErrNotBound is returned when an operation is attempted on a
	// collection handle that is not bound to a file, such as a zero-value
	// Collection. Handles obtained from Database.Collection are always
	// bound.
	ErrNotBound = errors.New("tinystore: collection handle is not bound to a file")
)
