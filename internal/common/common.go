// Package common holds the fixed-width scalar helpers shared by the
// byteable codec walkers: kind classification, byte widths, and
// order-aware put/get for reflect values.
package common

import (
	"encoding/binary"
	"math"
	"reflect"
)

// IsScalarKind reports whether k is a fixed-width numeric kind that the
// codec encodes directly. bool is deliberately excluded: it has a fixed
// width but not every byte pattern is a valid value.
func IsScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// ScalarSize returns the encoded byte width for fixed-width numeric
// kinds, or -1 for anything else.
func ScalarSize(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	default:
		return -1
	}
}

// PutScalar writes v's fixed-width value into b using the given byte
// order. b must be exactly ScalarSize(v.Kind()) bytes.
func PutScalar(b []byte, v reflect.Value, order binary.ByteOrder) {
	switch v.Kind() {
	case reflect.Int8:
		b[0] = byte(v.Int())
	case reflect.Uint8:
		b[0] = byte(v.Uint())
	case reflect.Int16:
		order.PutUint16(b, uint16(v.Int()))
	case reflect.Uint16:
		order.PutUint16(b, uint16(v.Uint()))
	case reflect.Int32:
		order.PutUint32(b, uint32(v.Int()))
	case reflect.Uint32:
		order.PutUint32(b, uint32(v.Uint()))
	case reflect.Int64:
		order.PutUint64(b, uint64(v.Int()))
	case reflect.Uint64:
		order.PutUint64(b, v.Uint())
	case reflect.Float32:
		order.PutUint32(b, math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		order.PutUint64(b, math.Float64bits(v.Float()))
	default:
		panic("common: not a scalar kind")
	}
}

// GetScalar decodes a fixed-width value from b using the given byte
// order and stores it into the settable value dst.
func GetScalar(dst reflect.Value, b []byte, order binary.ByteOrder) {
	switch dst.Kind() {
	case reflect.Int8:
		dst.SetInt(int64(int8(b[0])))
	case reflect.Uint8:
		dst.SetUint(uint64(b[0]))
	case reflect.Int16:
		dst.SetInt(int64(int16(order.Uint16(b))))
	case reflect.Uint16:
		dst.SetUint(uint64(order.Uint16(b)))
	case reflect.Int32:
		dst.SetInt(int64(int32(order.Uint32(b))))
	case reflect.Uint32:
		dst.SetUint(uint64(order.Uint32(b)))
	case reflect.Int64:
		dst.SetInt(int64(order.Uint64(b)))
	case reflect.Uint64:
		dst.SetUint(order.Uint64(b))
	case reflect.Float32:
		dst.SetFloat(float64(math.Float32frombits(order.Uint32(b))))
	case reflect.Float64:
		dst.SetFloat(math.Float64frombits(order.Uint64(b)))
	default:
		panic("common: not a scalar kind")
	}
}

// PutUint writes an already-widened discriminant value into b at the
// declared width.
func PutUint(b []byte, bits uint64, width int, order binary.ByteOrder) {
	switch width {
	case 1:
		b[0] = byte(bits)
	case 2:
		order.PutUint16(b, uint16(bits))
	case 4:
		order.PutUint32(b, uint32(bits))
	case 8:
		order.PutUint64(b, bits)
	default:
		panic("common: bad discriminant width")
	}
}

// GetUint reads a zero-extended fixed-width integer from b.
func GetUint(b []byte, width int, order binary.ByteOrder) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	default:
		panic("common: bad discriminant width")
	}
}
