// Package types holds the value types shared between the tinystore API
// and its persistence layer.
package types

// IDField is the record field that holds a record's identifier.
const IDField = "id"

// Record is a single schema-less record: a JSON object decoded into a Go
// map. Values are whatever encoding/json produces (string, float64, bool,
// nil, map[string]any, []any). Every record persisted by the store carries
// a string value under IDField.
type Record map[string]any

// Query is a conjunction of field-equality predicates. A record matches
// when every key in the query exists on the record with an equal value.
// The empty query matches every record.
type Query map[string]any

// Patch is a partial record merged into matching records during an update.
// Patch keys overwrite existing fields and add missing ones; fields not
// named in the patch are left untouched.
type Patch map[string]any

// ID returns the record's identifier, or "" when the record has none or
// carries a non-string value under IDField.
func (r Record) ID() string {
	id, _ := r[IDField].(string)
	return id
}

// Clone returns a shallow copy of the record. Mutating the copy's top-level
// keys does not affect the original.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge copies every key of patch into the record, overwriting values for
// keys the record already has.
func (r Record) Merge(patch Patch) {
	for k, v := range patch {
		r[k] = v
	}
}
