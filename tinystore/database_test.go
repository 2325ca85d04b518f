package tinystore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tinystore/tinystore/tinystore"
)

func TestOpenCreatesDirectory(t *testing.T) {
	root := t.TempDir()

	db, err := tinystore.Open("mydb", tinystore.WithRoot(root))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	info, err := os.Stat(filepath.Join(root, "mydb"))
	if err != nil {
		t.Fatalf("database directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("database path is not a directory")
	}
	if db.Dir() != filepath.Join(root, "mydb") {
		t.Errorf("unexpected database dir %q", db.Dir())
	}
}

func TestOpenRequiresName(t *testing.T) {
	if _, err := tinystore.Open(""); err == nil {
		t.Fatal("expected open with empty name to fail")
	}
}

func TestCollectionMaterializesFile(t *testing.T) {
	db, err := tinystore.Open("mydb", tinystore.WithRoot(t.TempDir()))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Collection("users"); err != nil {
		t.Fatalf("collection failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(db.Dir(), "users.json"))
	if err != nil {
		t.Fatalf("collection file not materialized: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected empty array encoding, got %q", data)
	}
}

func TestCollectionReturnsSameHandle(t *testing.T) {
	db, err := tinystore.Open("mydb", tinystore.WithRoot(t.TempDir()))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	first, err := db.Collection("users")
	if err != nil {
		t.Fatalf("collection failed: %v", err)
	}
	second, err := db.Collection("users")
	if err != nil {
		t.Fatalf("collection failed: %v", err)
	}
	if first != second {
		t.Error("expected repeated Collection calls to return the same handle")
	}
}

func TestCollectionNameValidation(t *testing.T) {
	db, err := tinystore.Open("mydb", tinystore.WithRoot(t.TempDir()))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, name := range []string{"", "../escape", "a/b", `a\b`, ".hidden"} {
		if _, err := db.Collection(name); err == nil {
			t.Errorf("expected collection name %q to be rejected", name)
		}
	}
}

func TestCollectionsIgnoresForeignFiles(t *testing.T) {
	db, err := tinystore.Open("mydb", tinystore.WithRoot(t.TempDir()))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, name := range []string{"users", "orders"} {
		if _, err := db.Collection(name); err != nil {
			t.Fatalf("collection failed: %v", err)
		}
	}

	// Arbitrary non-database files in the directory must not be listed.
	foreign := filepath.Join(db.Dir(), "notes.txt")
	if err := os.WriteFile(foreign, []byte("unrelated"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := db.Collections()
	if err != nil {
		t.Fatalf("collections failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 collections, got %v", names)
	}
	if names[0] != "orders" || names[1] != "users" {
		t.Errorf("unexpected collection listing: %v", names)
	}

	// The foreign file is untouched.
	data, err := os.ReadFile(foreign)
	if err != nil || string(data) != "unrelated" {
		t.Errorf("foreign file was modified: %q, %v", data, err)
	}
}

func TestDataSurvivesReopen(t *testing.T) {
	root := t.TempDir()

	db, err := tinystore.Open("mydb", tinystore.WithRoot(root))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	users, err := db.Collection("users")
	if err != nil {
		t.Fatalf("collection failed: %v", err)
	}
	if _, err := users.Insert(tinystore.Record{"id": "1", "name": "John"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened, err := tinystore.Open("mydb", tinystore.WithRoot(root))
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	users, err = reopened.Collection("users")
	if err != nil {
		t.Fatalf("collection failed: %v", err)
	}
	records, err := users.All()
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	if len(records) != 1 || records[0].ID() != "1" {
		t.Errorf("expected persisted record to survive reopen, got %v", records)
	}
}
