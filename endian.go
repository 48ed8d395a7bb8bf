package byteable

import (
	"encoding/binary"
	"math"
	"reflect"
)

// Endian carriers hold a scalar's bytes already permuted into a declared
// order. They are plain byte arrays, so they have one-byte alignment and
// every bit pattern is valid: a struct composed of carriers and single
// bytes has no padding and always takes the whole-value copy path.
//
// Signed values travel through the unsigned carriers by bit pattern:
// PutU16LE(uint16(i)) / int16(c.Get()).

// U16LE is a uint16 stored least-significant byte first.
type U16LE [2]byte

// PutU16LE returns v with its bytes permuted into little-endian order.
func PutU16LE(v uint16) U16LE {
	var c U16LE
	binary.LittleEndian.PutUint16(c[:], v)
	return c
}

// Get returns the native value.
func (c U16LE) Get() uint16 { return binary.LittleEndian.Uint16(c[:]) }

// U16BE is a uint16 stored most-significant byte first.
type U16BE [2]byte

func PutU16BE(v uint16) U16BE {
	var c U16BE
	binary.BigEndian.PutUint16(c[:], v)
	return c
}

func (c U16BE) Get() uint16 { return binary.BigEndian.Uint16(c[:]) }

// U32LE is a uint32 stored least-significant byte first.
type U32LE [4]byte

func PutU32LE(v uint32) U32LE {
	var c U32LE
	binary.LittleEndian.PutUint32(c[:], v)
	return c
}

func (c U32LE) Get() uint32 { return binary.LittleEndian.Uint32(c[:]) }

// U32BE is a uint32 stored most-significant byte first.
type U32BE [4]byte

func PutU32BE(v uint32) U32BE {
	var c U32BE
	binary.BigEndian.PutUint32(c[:], v)
	return c
}

func (c U32BE) Get() uint32 { return binary.BigEndian.Uint32(c[:]) }

// U64LE is a uint64 stored least-significant byte first.
type U64LE [8]byte

func PutU64LE(v uint64) U64LE {
	var c U64LE
	binary.LittleEndian.PutUint64(c[:], v)
	return c
}

func (c U64LE) Get() uint64 { return binary.LittleEndian.Uint64(c[:]) }

// U64BE is a uint64 stored most-significant byte first.
type U64BE [8]byte

func PutU64BE(v uint64) U64BE {
	var c U64BE
	binary.BigEndian.PutUint64(c[:], v)
	return c
}

func (c U64BE) Get() uint64 { return binary.BigEndian.Uint64(c[:]) }

// F32LE is a float32 stored as its IEEE 754 bits, least-significant
// byte first.
type F32LE [4]byte

func PutF32LE(v float32) F32LE {
	var c F32LE
	binary.LittleEndian.PutUint32(c[:], math.Float32bits(v))
	return c
}

func (c F32LE) Get() float32 { return math.Float32frombits(binary.LittleEndian.Uint32(c[:])) }

// F32BE is a float32 stored as its IEEE 754 bits, most-significant
// byte first.
type F32BE [4]byte

func PutF32BE(v float32) F32BE {
	var c F32BE
	binary.BigEndian.PutUint32(c[:], math.Float32bits(v))
	return c
}

func (c F32BE) Get() float32 { return math.Float32frombits(binary.BigEndian.Uint32(c[:])) }

// F64LE is a float64 stored as its IEEE 754 bits, least-significant
// byte first.
type F64LE [8]byte

func PutF64LE(v float64) F64LE {
	var c F64LE
	binary.LittleEndian.PutUint64(c[:], math.Float64bits(v))
	return c
}

func (c F64LE) Get() float64 { return math.Float64frombits(binary.LittleEndian.Uint64(c[:])) }

// F64BE is a float64 stored as its IEEE 754 bits, most-significant
// byte first.
type F64BE [8]byte

func PutF64BE(v float64) F64BE {
	var c F64BE
	binary.BigEndian.PutUint64(c[:], math.Float64bits(v))
	return c
}

func (c F64BE) Get() float64 { return math.Float64frombits(binary.BigEndian.Uint64(c[:])) }

// carrierTypes maps each carrier type to its byte width so the layout
// builder can recognize carrier fields by type identity.
var carrierTypes = map[reflect.Type]int{
	reflect.TypeOf(U16LE{}): 2,
	reflect.TypeOf(U16BE{}): 2,
	reflect.TypeOf(U32LE{}): 4,
	reflect.TypeOf(U32BE{}): 4,
	reflect.TypeOf(U64LE{}): 8,
	reflect.TypeOf(U64BE{}): 8,
	reflect.TypeOf(F32LE{}): 4,
	reflect.TypeOf(F32BE{}): 4,
	reflect.TypeOf(F64LE{}): 8,
	reflect.TypeOf(F64BE{}): 8,
}
