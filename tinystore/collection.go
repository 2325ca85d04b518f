package tinystore

import (
	"fmt"
	"log/slog"

	"github.com/tinystore/tinystore/internal/matching"
	"github.com/tinystore/tinystore/tinystore/ids"
	"github.com/tinystore/tinystore/tinystore/storage"
	"github.com/tinystore/tinystore/types"
)

// Collection is a handle to one named collection backed by a single JSON
// file. The file is the single source of truth: every operation loads the
// current contents, and mutations store the full set back atomically.
//
// A Collection is safe for concurrent use. Mutations serialize through the
// handle's lock, so a concurrent Insert, Update or Delete can never
// overwrite another's changes; reads run without the lock because the
// storage layer guarantees they observe a complete pre- or post-mutation
// snapshot.
type Collection struct {
	name        string
	storage     storage.Storage
	lockManager *storage.LockManager
	logger      *slog.Logger

	// guarded by lockManager
	lastInsertID string
	hasInserted  bool
}

func newCollection(name string, st storage.Storage, logger *slog.Logger) *Collection {
	return &Collection{
		name:        name,
		storage:     st,
		lockManager: storage.NewLockManager(),
		logger:      logger,
	}
}

// Name returns the collection's name.
func (c *Collection) Name() string {
	return c.name
}

// Insert appends record to the collection and returns the stored record.
// When the record has no "id" field a generated identifier is assigned;
// a caller-supplied id is used verbatim, without a uniqueness check.
// The input map is not mutated. On failure nothing becomes visible and
// the handle's last-insert-id is unchanged.
func (c *Collection) Insert(record Record) (Record, error) {
	if c.storage == nil {
		return nil, ErrNotBound
	}

	return storage.ExecuteWithResult(c.lockManager, storage.WriteOperation, func() (Record, error) {
		records, err := c.storage.Load()
		if err != nil {
			return nil, err
		}

		stored := record.Clone()
		var id string
		if raw, exists := stored[types.IDField]; exists {
			supplied, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("tinystore: record id must be a string, got %T", raw)
			}
			id = supplied
		} else {
			id = ids.New()
			stored[types.IDField] = id
		}

		records = append(records, stored)
		if err := c.storage.Store(records); err != nil {
			return nil, err
		}

		c.lastInsertID = id
		c.hasInserted = true
		c.logger.Debug("record inserted", "collection", c.name, "id", id)
		return stored, nil
	})
}

// LastInsertID returns the identifier assigned by the most recent
// successful Insert through this handle. It fails with ErrNoInsert before
// the first insert.
func (c *Collection) LastInsertID() (string, error) {
	if c.storage == nil {
		return "", ErrNotBound
	}

	return storage.ExecuteWithResult(c.lockManager, storage.ReadOperation, func() (string, error) {
		if !c.hasInserted {
			return "", ErrNoInsert
		}
		return c.lastInsertID, nil
	})
}

// All returns the collection's full current record set in insertion order.
func (c *Collection) All() ([]Record, error) {
	if c.storage == nil {
		return nil, ErrNotBound
	}
	return c.storage.Load()
}

// Find returns the records matching every field-equality predicate in
// query, preserving insertion order. An empty query returns all records.
func (c *Collection) Find(query Query) ([]Record, error) {
	records, err := c.All()
	if err != nil {
		return nil, err
	}

	matched := make([]Record, 0, len(records))
	for _, rec := range records {
		if matching.Matches(rec, query) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Update merges patch into every record matching query and stores the full
// set back. It returns the complete post-update record set, matched and
// unmatched records alike. On failure the prior on-disk state remains and
// the operation must be considered not committed.
func (c *Collection) Update(query Query, patch Patch) ([]Record, error) {
	if c.storage == nil {
		return nil, ErrNotBound
	}

	return storage.ExecuteWithResult(c.lockManager, storage.WriteOperation, func() ([]Record, error) {
		records, err := c.storage.Load()
		if err != nil {
			return nil, err
		}

		matched := 0
		for _, rec := range records {
			if matching.Matches(rec, query) {
				rec.Merge(patch)
				matched++
			}
		}

		if err := c.storage.Store(records); err != nil {
			return nil, err
		}

		c.logger.Debug("records updated", "collection", c.name, "matched", matched)
		return records, nil
	})
}

// Delete removes every record matching query and returns the removed
// records. Non-matching records keep their order. Same failure semantics
// as Update.
func (c *Collection) Delete(query Query) ([]Record, error) {
	if c.storage == nil {
		return nil, ErrNotBound
	}

	return storage.ExecuteWithResult(c.lockManager, storage.WriteOperation, func() ([]Record, error) {
		records, err := c.storage.Load()
		if err != nil {
			return nil, err
		}

		kept := make([]Record, 0, len(records))
		removed := make([]Record, 0)
		for _, rec := range records {
			if matching.Matches(rec, query) {
				removed = append(removed, rec)
			} else {
				kept = append(kept, rec)
			}
		}

		if err := c.storage.Store(kept); err != nil {
			return nil, err
		}

		c.logger.Debug("records deleted", "collection", c.name, "removed", len(removed))
		return removed, nil
	})
}

// Close releases the collection's storage resources. The handle must not
// be used afterwards.
func (c *Collection) Close() error {
	if c.storage == nil {
		return nil
	}
	return c.storage.Close()
}
