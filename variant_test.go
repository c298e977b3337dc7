package main

import (
	"testing"

	"github.com/godbus/dbus/v5"
)

// TestFlattenScalars verifies each recognized scalar becomes exactly one
// entry carrying the right tag.
func TestFlattenScalars(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected Value
	}{
		{"string", "Karma Police", StringValue("Karma Police")},
		{"int32", int32(6), Int32Value(6)},
		{"uint64", uint64(261000000), UInt64Value(261000000)},
		{"double", 0.55, DoubleValue(0.55)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaves := Flatten("k", tt.input)
			assertEqual(t, len(leaves), 1, "leaf count")
			assertEqual(t, leaves[0].Key, "k", "leaf key")
			assertEqual(t, leaves[0].Value, tt.expected, "leaf value")
		})
	}
}

// TestFlattenUnwrapsVariant verifies variant wrappers are transparent,
// including a variant inside a variant.
func TestFlattenUnwrapsVariant(t *testing.T) {
	leaves := Flatten("k", dbus.MakeVariant("x"))
	assertEqual(t, len(leaves), 1, "leaf count")
	assertEqual(t, leaves[0].Value, StringValue("x"), "unwrapped value")

	leaves = Flatten("k", dbus.MakeVariant(dbus.MakeVariant(int32(3))))
	assertEqual(t, len(leaves), 1, "leaf count")
	assertEqual(t, leaves[0].Value, Int32Value(3), "doubly unwrapped value")
}

// TestFlattenArraySharesKey verifies an array of k scalars produces k
// entries under the parent key, in array order.
func TestFlattenArraySharesKey(t *testing.T) {
	leaves := Flatten("xesam:artist", []string{"Thom Yorke", "Jonny Greenwood", "Ed O'Brien"})

	assertEqual(t, len(leaves), 3, "leaf count")
	for i, want := range []string{"Thom Yorke", "Jonny Greenwood", "Ed O'Brien"} {
		assertEqual(t, leaves[i].Key, "xesam:artist", "shared parent key")
		assertEqual(t, leaves[i].Value.Str(), want, "array order preserved")
	}
}

// TestFlattenNestedArrays verifies depth-first unrolling of heterogeneous
// and nested arrays under one key.
func TestFlattenNestedArrays(t *testing.T) {
	input := []interface{}{
		[]string{"a", "b"},
		"c",
		[]interface{}{[]int32{1, 2}, uint64(3)},
	}

	leaves := Flatten("k", input)
	expected := []Value{
		StringValue("a"), StringValue("b"), StringValue("c"),
		Int32Value(1), Int32Value(2), UInt64Value(3),
	}
	assertEqual(t, len(leaves), len(expected), "leaf count")
	for i, want := range expected {
		assertEqual(t, leaves[i].Key, "k", "shared parent key")
		assertEqual(t, leaves[i].Value, want, "depth-first order")
	}
}

// TestFlattenArrayOfVariants mirrors the wire shape "av": each element
// arrives wrapped in its own variant.
func TestFlattenArrayOfVariants(t *testing.T) {
	input := []dbus.Variant{
		dbus.MakeVariant("x"),
		dbus.MakeVariant(int32(2)),
	}

	leaves := Flatten("k", input)
	assertEqual(t, len(leaves), 2, "leaf count")
	assertEqual(t, leaves[0].Value, StringValue("x"), "first element")
	assertEqual(t, leaves[1].Value, Int32Value(2), "second element")
}

// TestFlattenDropsUnsupportedTypes verifies the lossy policy: booleans,
// dictionaries, object paths, signatures and other unrecognized types yield
// no entries, silently.
func TestFlattenDropsUnsupportedTypes(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"bool", true},
		{"object path", dbus.ObjectPath("/org/mpris/MediaPlayer2/Track/5")},
		{"signature", dbus.Signature{}},
		{"dictionary", map[string]dbus.Variant{"inner": dbus.MakeVariant("x")}},
		{"int64", int64(1)},
		{"uint32", uint32(1)},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaves := Flatten("k", tt.input)
			assertEqual(t, len(leaves), 0, "unsupported type dropped")
		})
	}
}

// TestFlattenUnsupportedSiblingsSurvive verifies a dropped element does not
// disturb decoding of its siblings.
func TestFlattenUnsupportedSiblingsSurvive(t *testing.T) {
	input := []interface{}{"a", true, "b"}

	leaves := Flatten("k", input)
	assertEqual(t, len(leaves), 2, "leaf count")
	assertEqual(t, leaves[0].Value.Str(), "a", "sibling before drop")
	assertEqual(t, leaves[1].Value.Str(), "b", "sibling after drop")
}

// TestFlattenByteArrayDropsElements: a byte array unrolls into unhandled
// byte scalars, so it contributes nothing. Same behavior as unrolling any
// array of unrecognized element type.
func TestFlattenByteArrayDropsElements(t *testing.T) {
	leaves := Flatten("k", []byte{1, 2, 3})
	assertEqual(t, len(leaves), 0, "byte elements dropped")
}

// TestDecodeIntoRespectsCapacity verifies the store bound is honored while
// decoding continues without failing.
func TestDecodeIntoRespectsCapacity(t *testing.T) {
	s := NewStore(2)
	decodeInto(s, "k", []string{"a", "b", "c", "d"})

	assertEqual(t, s.Len(), 2, "size pinned at capacity")
	got, err := s.Lookup("k", TypeString)
	assertNoError(t, err)
	assertEqual(t, got.Str(), "a", "first entry intact")
}

// TestDecodeIntoInsertsLeaves verifies the traversal/insert split produces
// the same store contents the recursive reference does.
func TestDecodeIntoInsertsLeaves(t *testing.T) {
	s := NewStore(10)
	decodeInto(s, "xesam:artist", dbus.MakeVariant([]string{"Radiohead"}))
	decodeInto(s, "xesam:title", dbus.MakeVariant("Karma Police"))

	artist, err := s.Lookup("xesam:artist", TypeString)
	assertNoError(t, err)
	assertEqual(t, artist.Str(), "Radiohead", "artist from array")

	title, err := s.Lookup("xesam:title", TypeString)
	assertNoError(t, err)
	assertEqual(t, title.Str(), "Karma Police", "title scalar")
}
