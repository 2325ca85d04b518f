// Package tinystore is a minimal embedded record store. It persists
// collections of schema-less records as JSON arrays on disk, one file per
// collection, and exposes create/read/update/delete operations keyed by
// flat field-equality queries.
//
// A Database owns a directory; each Collection handle is bound to one
// `<name>.json` file inside it. Records are plain maps; the only invariant
// is that every persisted record carries a unique string "id" field,
// assigned on insert when the caller does not supply one.
//
// Every mutation (Insert, Update, Delete) serializes through a
// per-collection lock and rewrites the whole file atomically, so concurrent
// mutations on the same handle never lose updates and readers never observe
// a partially written file. Reads load the current file contents directly;
// because writes replace the file by rename, a read sees either the
// pre-mutation or the post-mutation state, never a mix.
//
// The design trades throughput for simplicity and durability: every
// operation scans and rewrites the full collection, there are no indexes,
// no schemas and no cross-collection transactions. Two processes may share
// a database directory (writes are coordinated by a lock file), but two
// Database instances in the same process pointed at the same directory are
// not coordinated beyond the filesystem.
package tinystore
