// Package matching evaluates field-equality queries against records.
package matching

import (
	"fmt"
	"reflect"

	"github.com/tinystore/tinystore/types"
)

// Matches reports whether rec satisfies every predicate in query: for each
// query key the record must have that key with an equal value. An empty
// query matches every record. Matching is a full scan over the query; no
// index is consulted.
func Matches(rec types.Record, query types.Query) bool {
	for key, want := range query {
		got, exists := rec[key]
		if !exists {
			return false
		}
		if !Equal(got, want) {
			return false
		}
	}
	return true
}

// Equal compares two values by deep value equality under JSON semantics.
// Records loaded from storage carry the shapes encoding/json produces
// (float64 for all numbers, map[string]any, []any), while query values come
// straight from the caller and may use any Go numeric type. Both sides are
// normalized to the decoded shape before comparison, so Equal(3, 3.0) and
// Equal(int64(28), float64(28)) hold.
func Equal(a, b any) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}

// normalize rewrites v into the canonical decoded-JSON shape: numbers as
// float64, maps as map[string]any, sequences as []any.
func normalize(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Map:
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[fmt.Sprintf("%v", iter.Key().Interface())] = normalize(iter.Value().Interface())
		}
		return m
	case reflect.Slice, reflect.Array:
		s := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s[i] = normalize(rv.Index(i).Interface())
		}
		return s
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	default:
		return v
	}
}
