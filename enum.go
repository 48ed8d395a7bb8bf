package byteable

import (
	"fmt"
	"reflect"
	"sync"
)

// EnumInt constrains enum types to defined types with a fixed-width
// integer underlying type. Platform-width int and uint are excluded, so
// the wire width of a registered enum is always explicit in its
// declaration.
type EnumInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// enumSpec is the decoded form of one registration: the declared
// variant set keyed by raw discriminant bits, plus the wire order.
type enumSpec struct {
	typ    reflect.Type
	width  int
	order  Order
	signed bool
	values map[uint64]struct{}
}

var enumRegistry = struct {
	sync.RWMutex
	m map[reflect.Type]*enumSpec
}{m: make(map[reflect.Type]*enumSpec)}

// RegisterEnum declares the valid variant set of an enum type. The
// type's underlying width fixes the wire width; order fixes the wire
// byte order of the discriminant. After registration, fields and
// values of type T decode fallibly: any discriminant outside the
// declared set is rejected with InvalidDiscriminantError.
//
// Variant sets may be sparse and unordered; no contiguity is assumed.
// Registration fails on an empty or duplicated variant list, on a
// predeclared (non-defined) type, and on double registration.
func RegisterEnum[T EnumInt](order Order, variants ...T) error {
	t := reflect.TypeOf(variants).Elem()
	if t.PkgPath() == "" {
		return fmt.Errorf("%w: %s is not a defined type", ErrBadEnum, t)
	}
	if len(variants) == 0 {
		return fmt.Errorf("%w: %s has no variants", ErrBadEnum, t)
	}
	k := t.Kind()
	spec := &enumSpec{
		typ:    t,
		width:  int(t.Size()),
		order:  order,
		signed: k >= reflect.Int8 && k <= reflect.Int64,
		values: make(map[uint64]struct{}, len(variants)),
	}
	for _, v := range variants {
		bits := discriminantBits(reflect.ValueOf(v))
		if _, dup := spec.values[bits]; dup {
			return fmt.Errorf("%w: %s declares discriminant %v twice", ErrBadEnum, t, v)
		}
		spec.values[bits] = struct{}{}
	}

	enumRegistry.Lock()
	defer enumRegistry.Unlock()
	if _, ok := enumRegistry.m[t]; ok {
		return fmt.Errorf("%w: %s already registered", ErrBadEnum, t)
	}
	enumRegistry.m[t] = spec
	return nil
}

// MustRegisterEnum is RegisterEnum for package init blocks; it panics
// on registration errors.
func MustRegisterEnum[T EnumInt](order Order, variants ...T) {
	if err := RegisterEnum[T](order, variants...); err != nil {
		panic(err)
	}
}

func lookupEnum(t reflect.Type) *enumSpec {
	enumRegistry.RLock()
	defer enumRegistry.RUnlock()
	return enumRegistry.m[t]
}

// discriminantBits widens a variant value to its raw bit pattern,
// zero-extended to 64 bits. Signed variants keep their two's-complement
// pattern at the declared width, so -1 as int8 is 0xFF, not 0xFF...FF.
func discriminantBits(v reflect.Value) uint64 {
	if k := v.Kind(); k >= reflect.Int8 && k <= reflect.Int64 {
		bits := uint64(v.Int())
		if w := v.Type().Size(); w < 8 {
			bits &= 1<<(8*w) - 1
		}
		return bits
	}
	return v.Uint()
}

// signExtend recovers the signed value of raw discriminant bits read at
// the given width.
func signExtend(bits uint64, width int) int64 {
	shift := 64 - 8*width
	return int64(bits<<shift) >> shift
}

// decodeError builds the rejection error for bits with no matching
// variant.
func (s *enumSpec) decodeError(bits uint64) error {
	v := int64(bits)
	if s.signed {
		v = signExtend(bits, s.width)
	}
	return &InvalidDiscriminantError{Type: s.typ.String(), Value: v, Signed: s.signed}
}
