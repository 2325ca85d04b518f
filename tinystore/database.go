package tinystore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tinystore/tinystore/tinystore/storage"
)

// collectionExt is the file extension of collection files.
const collectionExt = ".json"

// Database owns a directory of collection files and the set of open
// collection handles. Instances are independent; pointing two Database
// instances at the same directory from the same process is not coordinated
// beyond the filesystem and needs external care.
type Database struct {
	name   string
	root   string
	dir    string
	logger *slog.Logger

	mu          sync.Mutex
	collections map[string]*Collection
}

// Open opens the database called name, creating its directory under the
// root if needed. The directory is <root>/<name>; the root defaults to the
// current working directory and can be overridden with WithRoot.
func Open(name string, opts ...Option) (*Database, error) {
	if name == "" {
		return nil, errors.New("tinystore: database name is required")
	}

	db := &Database{
		name:        name,
		logger:      slog.Default(),
		collections: make(map[string]*Collection),
	}
	for _, opt := range opts {
		opt(db)
	}

	root := db.root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("tinystore: resolve working directory: %w", err)
		}
		root = wd
	}

	dir, err := filepath.Abs(filepath.Join(root, name))
	if err != nil {
		return nil, fmt.Errorf("tinystore: resolve database directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &storage.IOError{Op: "mkdir", Path: dir, Err: err}
	}
	db.dir = dir

	db.logger.Debug("database opened", "name", name, "dir", dir)
	return db, nil
}

// Name returns the database name.
func (db *Database) Name() string {
	return db.name
}

// Dir returns the absolute directory backing the database.
func (db *Database) Dir() string {
	return db.dir
}

// Collection returns the handle for the named collection, materializing
// its backing file with an empty record set if absent. Repeated calls with
// the same name return the same handle.
func (db *Database) Collection(name string) (*Collection, error) {
	if err := validateCollectionName(name); err != nil {
		return nil, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if c, ok := db.collections[name]; ok {
		return c, nil
	}

	st := storage.NewJSON(filepath.Join(db.dir, name+collectionExt))
	if err := st.Ensure(); err != nil {
		return nil, err
	}

	c := newCollection(name, st, db.logger)
	db.collections[name] = c
	return c, nil
}

// Collections lists the names of the collections present in the database
// directory, in lexical order. Files that are not collection files are
// ignored; the database never touches them.
func (db *Database) Collections() ([]string, error) {
	entries, err := os.ReadDir(db.dir)
	if err != nil {
		return nil, &storage.IOError{Op: "read", Path: db.dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), collectionExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), collectionExt))
	}
	return names, nil
}

// Close releases every open collection handle. The database directory and
// its files are left in place.
func (db *Database) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	var firstErr error
	for _, c := range db.collections {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	db.collections = make(map[string]*Collection)
	return firstErr
}

// validateCollectionName rejects names that would escape the database
// directory or collide with its bookkeeping files.
func validateCollectionName(name string) error {
	if name == "" {
		return errors.New("tinystore: collection name is required")
	}
	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("tinystore: invalid collection name %q: must not contain path separators", name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("tinystore: invalid collection name %q: must not start with a dot", name)
	}
	return nil
}
