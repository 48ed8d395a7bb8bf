package byteable

import "reflect"

// Bitcastable reports whether every possible byte pattern of t's
// encoding denotes a valid value, the property that gates the
// whole-value reinterpretation path.
//
// Granted: fixed-width integers and floats, the endian carrier types,
// fixed arrays of bitcastable elements, and structs whose every field
// is bitcastable.
//
// Denied, regardless of structure: bool (two valid patterns), Char
// (surrogate gaps and an upper bound), registered enum types (sparse
// discriminants), platform-width int/uint/uintptr (layout varies by
// platform), and anything that owns memory or resources beyond its own
// bytes (pointers, slices, strings, maps, channels, funcs, interfaces).
//
// Unexported struct fields count toward the marker like any other
// field: the property is about bit patterns, not visibility. The codec
// nevertheless skips unexported fields when encoding, so their presence
// disqualifies a struct from the whole-value copy path even when the
// marker holds.
func Bitcastable(t reflect.Type) bool {
	if _, ok := carrierTypes[t]; ok {
		return true
	}
	if t == charType || lookupEnum(t) != nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Array:
		return Bitcastable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !Bitcastable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

var charType = reflect.TypeOf(Char(0))
