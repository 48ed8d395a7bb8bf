package byteable

import (
	"fmt"
	"reflect"
	"unicode/utf8"
	"unsafe"

	"github.com/PaulDepping/byteable/internal/common"
)

// codec is the shared core of Codec and TryCodec: an immutable layout
// plus the resolved conversion strategy. Codecs hold no mutable state,
// so one codec may be used from any number of goroutines.
type codec[T any] struct {
	lay         *layout
	reinterpret bool
}

func newCodec[T any](opts Options) (codec[T], error) {
	lay, err := buildLayout(reflect.TypeOf((*T)(nil)).Elem(), opts.Order)
	if err != nil {
		return codec[T]{}, err
	}
	return codec[T]{lay: lay, reinterpret: lay.trivial && !opts.DisableReinterpret}, nil
}

// Size returns the exact byte length of every encoding produced or
// consumed by this codec.
func (c *codec[T]) Size() int { return c.lay.size }

// Encode returns v's byte encoding. Encoding never fails: every value
// that type-checks has exactly one encoding.
func (c *codec[T]) Encode(v T) []byte {
	return c.Append(make([]byte, 0, c.lay.size), v)
}

// Append appends v's byte encoding to dst and returns the extended
// slice.
func (c *codec[T]) Append(dst []byte, v T) []byte {
	if c.reinterpret {
		return append(dst, unsafe.Slice((*byte)(unsafe.Pointer(&v)), c.lay.size)...)
	}
	return appendValue(dst, reflect.ValueOf(&v).Elem(), c.lay)
}

func (c *codec[T]) decode(b []byte) (T, error) {
	if len(b) != c.lay.size {
		panic(fmt.Sprintf("byteable: Decode %s: got %d bytes, need %d", c.lay.typ, len(b), c.lay.size))
	}
	var v T
	if c.reinterpret {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), c.lay.size), b)
		return v, nil
	}
	err := decodeValue(b, reflect.ValueOf(&v).Elem(), c.lay)
	return v, err
}

// Codec converts values of T whose every byte pattern is valid, so
// decoding cannot fail. Build one with NewCodec.
type Codec[T any] struct {
	codec[T]
}

// NewCodec builds the infallible codec for T from its declaration and
// byteable tags. It fails with ErrFallible when T contains a bool,
// Char, or registered enum anywhere in its layout (use NewTryCodec),
// and with ErrUnsupported for declarations outside the fixed-layout
// subset.
func NewCodec[T any](opts Options) (*Codec[T], error) {
	c, err := newCodec[T](opts)
	if err != nil {
		return nil, err
	}
	if c.lay.fallible {
		return nil, fmt.Errorf("%w: %s", ErrFallible, c.lay.typ)
	}
	return &Codec[T]{c}, nil
}

// Decode reconstructs a value from its encoding. b must be exactly
// Size() bytes; Decode panics otherwise, mirroring the fixed-length
// contract of the encoding.
func (c *Codec[T]) Decode(b []byte) T {
	v, err := c.decode(b)
	if err != nil {
		// Unreachable: an infallible layout has no rejecting decoder.
		panic(err)
	}
	return v
}

// TryCodec converts values of T where decode must validate byte
// patterns. Encoding is still total; only decoding can fail.
type TryCodec[T any] struct {
	codec[T]
}

// NewTryCodec builds the fallible codec for T. It accepts every layout
// NewCodec accepts, plus layouts containing bool, Char, and registered
// enum parts.
func NewTryCodec[T any](opts Options) (*TryCodec[T], error) {
	c, err := newCodec[T](opts)
	if err != nil {
		return nil, err
	}
	return &TryCodec[T]{c}, nil
}

// Decode reconstructs a value from its encoding, or reports the first
// sub-decode that rejected its bytes. On failure no partial value is
// returned. b must be exactly Size() bytes; Decode panics otherwise.
func (c *TryCodec[T]) Decode(b []byte) (T, error) {
	v, err := c.decode(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func appendValue(dst []byte, v reflect.Value, l *layout) []byte {
	switch l.kind {
	case opByte:
		if v.Kind() == reflect.Int8 {
			return append(dst, byte(v.Int()))
		}
		return append(dst, byte(v.Uint()))
	case opScalar:
		var scratch [8]byte
		b := scratch[:l.size]
		common.PutScalar(b, v, l.order.byteOrder())
		return append(dst, b...)
	case opCarrier:
		if v.CanAddr() {
			return append(dst, v.Slice(0, l.size).Bytes()...)
		}
		for i := 0; i < l.size; i++ {
			dst = append(dst, byte(v.Index(i).Uint()))
		}
		return dst
	case opBool:
		if v.Bool() {
			return append(dst, 1)
		}
		return append(dst, 0)
	case opChar:
		var scratch [4]byte
		l.order.byteOrder().PutUint32(scratch[:], uint32(v.Int()))
		return append(dst, scratch[:]...)
	case opEnum:
		var scratch [8]byte
		b := scratch[:l.size]
		common.PutUint(b, discriminantBits(v), l.size, l.enum.order.byteOrder())
		return append(dst, b...)
	case opArray:
		for i := 0; i < l.count; i++ {
			dst = appendValue(dst, v.Index(i), l.elem)
		}
		return dst
	case opStruct:
		for _, f := range l.fields {
			dst = appendValue(dst, v.Field(f.index), f.lay)
		}
		return dst
	}
	panic("byteable: unknown layout op")
}

func decodeValue(b []byte, v reflect.Value, l *layout) error {
	switch l.kind {
	case opByte:
		if v.Kind() == reflect.Int8 {
			v.SetInt(int64(int8(b[0])))
		} else {
			v.SetUint(uint64(b[0]))
		}
	case opScalar:
		common.GetScalar(v, b[:l.size], l.order.byteOrder())
	case opCarrier:
		if v.CanAddr() {
			copy(v.Slice(0, l.size).Bytes(), b[:l.size])
		} else {
			for i := 0; i < l.size; i++ {
				v.Index(i).SetUint(uint64(b[i]))
			}
		}
	case opBool:
		switch b[0] {
		case 0:
			v.SetBool(false)
		case 1:
			v.SetBool(true)
		default:
			return &InvalidBoolError{Value: b[0]}
		}
	case opChar:
		bits := l.order.byteOrder().Uint32(b[:4])
		if !utf8.ValidRune(rune(int32(bits))) {
			return &InvalidCharError{Value: bits}
		}
		v.SetInt(int64(int32(bits)))
	case opEnum:
		bits := common.GetUint(b[:l.size], l.size, l.enum.order.byteOrder())
		if _, ok := l.enum.values[bits]; !ok {
			return l.enum.decodeError(bits)
		}
		if l.enum.signed {
			v.SetInt(signExtend(bits, l.size))
		} else {
			v.SetUint(bits)
		}
	case opArray:
		es := l.elem.size
		for i := 0; i < l.count; i++ {
			if err := decodeValue(b[i*es:(i+1)*es], v.Index(i), l.elem); err != nil {
				return err
			}
		}
	case opStruct:
		for _, f := range l.fields {
			if err := decodeValue(b[f.off:f.off+f.lay.size], v.Field(f.index), f.lay); err != nil {
				return err
			}
		}
	default:
		panic("byteable: unknown layout op")
	}
	return nil
}
