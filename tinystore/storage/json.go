package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"

	"github.com/tinystore/tinystore/types"
)

// Constants for file locking and file creation
const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
	fileMode       = 0o644
)

// JSONStorage implements Storage backed by a single JSON array-of-objects
// file. Every Store replaces the file atomically: the new content is
// written to a temporary file in the same directory, synced, then renamed
// onto the target path. The rename is the atomicity boundary, so a reader
// (or a process crash mid-write) observes either the previous or the new
// complete contents, never a truncated file.
//
// A flock lock file next to the data file coordinates access across
// processes; in-process serialization is the caller's job (see LockManager).
type JSONStorage struct {
	filePath string
	fileLock *flock.Flock
}

// NewJSON creates storage for the collection file at filePath. The file
// itself is not touched until Ensure, Load or Store is called.
func NewJSON(filePath string) *JSONStorage {
	return &JSONStorage{
		filePath: filePath,
		fileLock: flock.New(filePath + ".lock"),
	}
}

// Path returns the collection file path.
func (s *JSONStorage) Path() string {
	return s.filePath
}

// Ensure materializes the collection file with an empty record set if it
// does not exist yet.
func (s *JSONStorage) Ensure() error {
	if err := s.acquireLock(); err != nil {
		return err
	}
	defer func() { _ = s.fileLock.Unlock() }()

	if _, err := os.Stat(s.filePath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return &IOError{Op: "stat", Path: s.filePath, Err: err}
	}
	return s.replace(emptySet)
}

// Load reads the collection's full current record set. A file that does
// not exist yet loads as an empty set.
func (s *JSONStorage) Load() ([]types.Record, error) {
	if err := s.acquireLock(); err != nil {
		return nil, err
	}
	defer func() { _ = s.fileLock.Unlock() }()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.Record{}, nil
		}
		return nil, &IOError{Op: "read", Path: s.filePath, Err: err}
	}

	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.filePath, err)
	}
	return records, nil
}

// Store durably replaces the collection's contents with records. The write
// is confirmed before Store returns; on any failure the previous file is
// left in its last known-good state.
func (s *JSONStorage) Store(records []types.Record) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	if err := s.acquireLock(); err != nil {
		return err
	}
	defer func() { _ = s.fileLock.Unlock() }()

	return s.replace(data)
}

// Close removes the lock file.
func (s *JSONStorage) Close() error {
	_ = os.Remove(s.filePath + ".lock")
	return nil
}

// replace writes data to a temporary file in the target's directory, syncs
// it, and renames it onto the collection file. Caller must hold the file
// lock.
func (s *JSONStorage) replace(data []byte) error {
	tmpPath := s.filePath + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return &IOError{Op: "write", Path: tmpPath, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return &IOError{Op: "write", Path: tmpPath, Err: err}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return &IOError{Op: "sync", Path: tmpPath, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "close", Path: tmpPath, Err: err}
	}

	if err := os.Rename(tmpPath, s.filePath); err != nil {
		_ = os.Remove(tmpPath)
		return &IOError{Op: "rename", Path: s.filePath, Err: err}
	}
	return nil
}

// acquireLock takes the cross-process file lock, giving up after
// lockTimeout.
func (s *JSONStorage) acquireLock() error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return &IOError{Op: "lock", Path: s.fileLock.Path(), Err: err}
	}
	if !locked {
		return &IOError{Op: "lock", Path: s.fileLock.Path(), Err: errors.New("could not acquire file lock")}
	}
	return nil
}
