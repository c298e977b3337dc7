package main

import (
	"errors"
	"strconv"
)

// Type tags the wire type of a stored metadata value
type Type int

const (
	TypeString Type = iota
	TypeInt32
	TypeUInt64
	TypeDouble
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInt32:
		return "Int32"
	case TypeUInt64:
		return "UInt64"
	case TypeDouble:
		return "Double"
	}
	return "Unknown"
}

// Value is a tagged union over the metadata scalar types. The tag and the
// payload are set together by the constructors, so they cannot disagree.
type Value struct {
	typ Type
	str string
	i32 int32
	u64 uint64
	f64 float64
}

func StringValue(s string) Value  { return Value{typ: TypeString, str: s} }
func Int32Value(i int32) Value    { return Value{typ: TypeInt32, i32: i} }
func UInt64Value(u uint64) Value  { return Value{typ: TypeUInt64, u64: u} }
func DoubleValue(f float64) Value { return Value{typ: TypeDouble, f64: f} }

func (v Value) Type() Type     { return v.typ }
func (v Value) Str() string    { return v.str }
func (v Value) Int32() int32   { return v.i32 }
func (v Value) UInt64() uint64 { return v.u64 }

// Render formats the payload for display. Doubles use six decimal places to
// match printf-style %f output.
func (v Value) Render() string {
	switch v.typ {
	case TypeString:
		return v.str
	case TypeInt32:
		return strconv.FormatInt(int64(v.i32), 10)
	case TypeUInt64:
		return strconv.FormatUint(v.u64, 10)
	case TypeDouble:
		return strconv.FormatFloat(v.f64, 'f', 6, 64)
	}
	return ""
}

var (
	// ErrNotFound means no entry matched the key, or the matched entry's
	// type is one the lookup path does not copy out (see Lookup).
	ErrNotFound = errors.New("metadata key not found")
	// ErrWrongType means the first entry matching the key holds a
	// different type than the caller asked for.
	ErrWrongType = errors.New("metadata value has wrong type")
	// ErrStoreFull means an insert was dropped because the store is at
	// its capacity bound.
	ErrStoreFull = errors.New("metadata store is full")
)

// Entry is one decoded metadata leaf. Flattened arrays produce several
// entries sharing one key, in array order.
type Entry struct {
	Key   string
	Value Value
}

// Store is an insertion-ordered collection of metadata entries with a fixed
// capacity bound. Duplicate keys are permitted and never merged; Lookup
// always answers with the first match in insertion order.
type Store struct {
	entries  []Entry
	capacity int
}

// DefaultStoreCapacity bounds a store when the configured capacity is
// missing or not positive.
const DefaultStoreCapacity = 100

// NewStore returns an empty store holding at most capacity entries.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultStoreCapacity
	}
	return &Store{capacity: capacity}
}

func (s *Store) Len() int { return len(s.entries) }

// Insert appends an entry. At capacity the entry is dropped and ErrStoreFull
// returned; the caller reports the condition and carries on, it never aborts
// the run.
func (s *Store) Insert(key string, v Value) error {
	if len(s.entries) >= s.capacity {
		return ErrStoreFull
	}
	s.entries = append(s.entries, Entry{Key: key, Value: v})
	return nil
}

// Lookup scans entries in insertion order and returns the first one whose
// key matches, regardless of later duplicates. A match with a different
// stored type yields ErrWrongType without scanning further. Double values
// are storable but not retrievable: asking for one yields ErrNotFound even
// when the key and type match. Today's commands only ever ask for strings
// and integers, so the gap is preserved rather than widened.
func (s *Store) Lookup(key string, typ Type) (Value, error) {
	for _, e := range s.entries {
		if e.Key != key {
			continue
		}
		if e.Value.Type() != typ {
			return Value{}, ErrWrongType
		}
		switch typ {
		case TypeString, TypeInt32, TypeUInt64:
			return e.Value, nil
		}
		return Value{}, ErrNotFound
	}
	return Value{}, ErrNotFound
}

// Entries returns an insertion-ordered snapshot of the store.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Reset empties the store so it can be reused for another query.
func (s *Store) Reset() {
	s.entries = nil
}
