// Package byteable converts fixed-layout values to and from their exact
// byte representation.
//
// A codec is built once per type from the type's declaration and its
// `byteable` struct tags, then reused for every conversion. Two codec
// kinds exist: Codec for types whose every byte pattern is a valid value
// (decode cannot fail), and TryCodec for types containing bool, Char, or
// registered enum fields, where decode must reject invalid patterns.
//
// When a struct's in-memory layout is byte-identical to its wire layout
// (every field bit-pattern safe, no padding, byte order matching the
// platform), conversion is a single whole-value byte copy instead of a
// field walk. Structs built from the endian carrier types (U16LE, U32BE,
// ...) always qualify, since the carriers are one-byte aligned and hold
// their bytes pre-permuted.
package byteable

import (
	"encoding/binary"
)

// Order selects the byte order of multi-byte fields. It is the
// type-level annotation: the zero value leaves untagged fields in the
// platform's native order.
type Order uint8

const (
	OrderNative Order = iota
	OrderLittle
	OrderBig
)

func (o Order) String() string {
	switch o {
	case OrderLittle:
		return "little_endian"
	case OrderBig:
		return "big_endian"
	default:
		return "native"
	}
}

func (o Order) byteOrder() binary.ByteOrder {
	switch o {
	case OrderLittle:
		return binary.LittleEndian
	case OrderBig:
		return binary.BigEndian
	default:
		return binary.NativeEndian
	}
}

// nativeLittle is resolved once; it decides whether an explicit order
// still permits whole-value reinterpretation on this platform.
var nativeLittle = func() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	return b[0] == 1
}()

// matchesNative reports whether values encoded under o have the same
// byte sequence as the platform's in-memory representation.
func (o Order) matchesNative() bool {
	switch o {
	case OrderLittle:
		return nativeLittle
	case OrderBig:
		return !nativeLittle
	default:
		return true
	}
}

// Options configures codec construction.
type Options struct {
	// Order is the default byte order for multi-byte fields that carry
	// no field-level tag. It applies to the whole declaration tree,
	// including transparent nested structs.
	Order Order

	// DisableReinterpret forces the field-by-field conversion path even
	// when the whole-value byte copy would be valid.
	DisableReinterpret bool
}

// Char is a Unicode code point with a 4-byte fixed-width encoding.
// Unlike rune (which it is declared from), a Char field decodes
// fallibly: surrogate code points and values above U+10FFFF are
// rejected.
type Char rune
