package storage

import "sync"

// OperationType defines whether an operation reads or mutates the
// collection. Reads take a shared lock and may run concurrently; mutations
// take an exclusive lock so that every read-mutate-write sequence is atomic
// relative to other mutations on the same collection.
type OperationType int

const (
	// ReadOperation indicates an operation that only reads state.
	ReadOperation OperationType = iota

	// WriteOperation indicates an operation that mutates state. Write
	// operations are exclusive per collection handle.
	WriteOperation
)

// LockManager serializes operations on one collection handle. It
// encapsulates the locking strategy so callers never touch the mutex
// directly; the lock is released on every exit path, including panics,
// because acquisition and release happen inside Execute.
type LockManager struct {
	mu sync.RWMutex
}

// NewLockManager returns a LockManager ready for concurrent use.
func NewLockManager() *LockManager {
	return &LockManager{}
}

// Execute runs fn under the lock appropriate for opType and returns fn's
// error. For WriteOperation the caller holds the collection's exclusive
// lock for the whole duration of fn, which is what makes a load-mutate-store
// sequence safe against concurrent mutations.
func (lm *LockManager) Execute(opType OperationType, fn func() error) error {
	switch opType {
	case ReadOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case WriteOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}

// ExecuteWithResult runs fn under the lock appropriate for opType and
// returns fn's result. Locking behavior is identical to Execute.
func ExecuteWithResult[T any](lm *LockManager, opType OperationType, fn func() (T, error)) (T, error) {
	switch opType {
	case ReadOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case WriteOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
