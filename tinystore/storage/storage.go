// Package storage provides the persistence layer for tinystore.
// A collection file is always read and replaced as a single unit, which
// matches the JSON array-of-objects on-disk format: readers observe either
// the previous complete contents or the new complete contents, never a
// partial write.
package storage

import "github.com/tinystore/tinystore/types"

// Storage defines the low-level interface for whole-collection persistence.
type Storage interface {
	// Load reads the collection's full current record set. A missing or
	// empty file yields an empty set, not an error.
	Load() ([]types.Record, error)

	// Store durably replaces the collection's contents with records. On
	// failure the previous on-disk state is left untouched.
	Store(records []types.Record) error

	// Close releases any resources held by the storage.
	Close() error
}
