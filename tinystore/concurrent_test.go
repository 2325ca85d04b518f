package tinystore_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/tinystore/tinystore/tinystore"
)

// Each mutation independently reads the full file, mutates in memory and
// writes back; without per-collection serialization, concurrent writers
// overwrite each other's changes. These tests are the regression suite for
// that lost-update race.

func TestConcurrentInsertsLoseNoUpdates(t *testing.T) {
	users := openTestCollection(t)

	const writers = 20
	var wg sync.WaitGroup
	errCh := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := users.Insert(tinystore.Record{"id": fmt.Sprintf("writer-%d", n)})
			if err != nil {
				errCh <- fmt.Errorf("writer %d: %w", n, err)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Errorf("concurrent insert error: %v", err)
	}

	records, err := users.All()
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	if len(records) != writers {
		t.Errorf("expected exactly %d records on disk, got %d", writers, len(records))
	}

	seen := make(map[string]bool)
	for _, rec := range records {
		if seen[rec.ID()] {
			t.Errorf("duplicate record id %q", rec.ID())
		}
		seen[rec.ID()] = true
	}
}

func TestConcurrentMixedMutations(t *testing.T) {
	users := openTestCollection(t)

	for i := 0; i < 10; i++ {
		if _, err := users.Insert(tinystore.Record{"id": fmt.Sprintf("seed-%d", i), "kind": "seed"}); err != nil {
			t.Fatalf("seed insert failed: %v", err)
		}
	}

	var wg sync.WaitGroup
	errCh := make(chan error, 30)

	for i := 0; i < 10; i++ {
		wg.Add(3)
		go func(n int) {
			defer wg.Done()
			if _, err := users.Insert(tinystore.Record{"id": fmt.Sprintf("new-%d", n), "kind": "new"}); err != nil {
				errCh <- err
			}
		}(i)
		go func() {
			defer wg.Done()
			if _, err := users.Update(tinystore.Query{"kind": "seed"}, tinystore.Patch{"touched": true}); err != nil {
				errCh <- err
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := users.Find(tinystore.Query{"kind": "seed"}); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Errorf("concurrent mutation error: %v", err)
	}

	records, err := users.All()
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	if len(records) != 20 {
		t.Errorf("expected 20 records after mixed mutations, got %d", len(records))
	}
}

func TestConcurrentDeleteAndInsert(t *testing.T) {
	users := openTestCollection(t)

	for i := 0; i < 10; i++ {
		if _, err := users.Insert(tinystore.Record{"id": fmt.Sprintf("old-%d", i), "kind": "old"}); err != nil {
			t.Fatalf("seed insert failed: %v", err)
		}
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = users.Delete(tinystore.Query{"kind": "old"})
	}()
	go func() {
		defer wg.Done()
		_, _ = users.Insert(tinystore.Record{"id": "fresh", "kind": "fresh"})
	}()
	wg.Wait()

	records, err := users.All()
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	// Whichever order the two mutations serialized in, the delete removes
	// all ten "old" records and the insert survives it.
	if len(records) != 1 || records[0]["kind"] != "fresh" {
		t.Errorf("expected only the fresh record to remain, got %v", records)
	}
}
