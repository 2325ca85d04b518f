package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tinystore/tinystore/types"
)

// emptySet is the on-disk encoding of a collection with no records.
var emptySet = []byte("[]")

// Encode serializes records as an indented JSON array of objects, the exact
// inverse of Decode. A nil slice encodes as an empty array.
func Encode(records []types.Record) ([]byte, error) {
	if records == nil {
		records = []types.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return data, nil
}

// Decode parses data as a JSON array of objects. Empty input decodes to an
// empty record set; anything that is not a well-formed array of objects
// fails with a *CorruptError.
func Decode(data []byte) ([]types.Record, error) {
	if len(data) == 0 {
		return []types.Record{}, nil
	}

	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &CorruptError{Err: err}
	}
	// json.Unmarshal accepts a top-level "null" without touching the slice
	if records == nil {
		return nil, &CorruptError{Err: errors.New("top-level value is not an array")}
	}
	return records, nil
}
