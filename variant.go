package main

import (
	"reflect"

	"github.com/godbus/dbus/v5"
)

// Flatten walks an arbitrarily nested variant value and returns its scalar
// leaves as entries, every one under the parent key. Arrays are unrolled
// transparently: an array of n scalars yields n entries sharing the key, in
// array order. Traversal is pure; inserting the result into a store is the
// caller's job (see decodeInto).
//
// Recognized scalars are string, int32, uint64 and double. Anything else a
// variant can carry (booleans, dictionaries, object paths, signatures, ...)
// yields no entry and is logged at debug level only; this lossiness is part
// of the contract, not an error.
//
// Depth is unbounded. D-Bus values are trees by construction, so cycles
// cannot occur on the wire.
func Flatten(key string, v interface{}) []Entry {
	var leaves []Entry
	flatten(key, v, &leaves)
	return leaves
}

func flatten(key string, v interface{}, leaves *[]Entry) {
	switch x := v.(type) {
	case dbus.Variant:
		flatten(key, x.Value(), leaves)
	case string:
		*leaves = append(*leaves, Entry{Key: key, Value: StringValue(x)})
	case int32:
		*leaves = append(*leaves, Entry{Key: key, Value: Int32Value(x)})
	case uint64:
		*leaves = append(*leaves, Entry{Key: key, Value: UInt64Value(x)})
	case float64:
		*leaves = append(*leaves, Entry{Key: key, Value: DoubleValue(x)})
	default:
		// The bus library surfaces arrays as concrete slice types
		// ([]string, []int32, []dbus.Variant, nested [][]string, ...),
		// so arrays are recognized by kind rather than by type.
		rv := reflect.ValueOf(v)
		if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			for i := 0; i < rv.Len(); i++ {
				flatten(key, rv.Index(i).Interface(), leaves)
			}
			return
		}
		goType := "nil"
		if v != nil {
			goType = reflect.TypeOf(v).String()
		}
		logger.Debug().
			Str("key", key).
			Str("go_type", goType).
			Msg("dropping variant of unhandled type")
	}
}

// decodeInto flattens one dictionary entry's value and inserts every leaf
// into the store. A full store drops the remaining leaves with a warning;
// decoding of later entries continues regardless.
func decodeInto(store *Store, key string, v interface{}) {
	for _, leaf := range Flatten(key, v) {
		if err := store.Insert(leaf.Key, leaf.Value); err != nil {
			logger.Warn().
				Str("key", leaf.Key).
				Int("capacity", store.capacity).
				Msg("metadata store is full, dropping entry")
		}
	}
}
