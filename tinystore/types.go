package tinystore

import "github.com/tinystore/tinystore/types"

// Record is re-exported from the types package for convenience
type Record = types.Record

// Query is re-exported from the types package for convenience
type Query = types.Query

// Patch is re-exported from the types package for convenience
type Patch = types.Patch
