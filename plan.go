package byteable

import (
	"fmt"
	"reflect"
)

type opKind uint8

const (
	opByte    opKind = iota // uint8 / int8
	opScalar                // multi-byte fixed-width scalar
	opCarrier               // endian carrier, bytes copied verbatim
	opBool
	opChar
	opEnum
	opArray
	opStruct
)

// A layout is the raw-layout mirror of one declared type: the packed
// wire shape derived from the declaration and its tags, built once per
// codec and immutable afterwards.
type layout struct {
	typ  reflect.Type
	kind opKind
	size int // packed wire size

	// trivial means the in-memory bytes of a value equal its wire
	// encoding: every part bit-pattern safe, no padding, byte order
	// matching the platform. Gates the whole-value copy path.
	trivial bool

	// fallible means decode can reject byte patterns; the type only
	// supports TryCodec.
	fallible bool

	order  Order     // opScalar, opChar
	enum   *enumSpec // opEnum
	elem   *layout   // opArray
	count  int       // opArray
	fields []structField
}

type structField struct {
	index int // reflect field index
	name  string
	off   int // packed wire offset
	lay   *layout
}

func buildLayout(t reflect.Type, def Order) (*layout, error) {
	if w, ok := carrierTypes[t]; ok {
		return &layout{typ: t, kind: opCarrier, size: w, trivial: true}, nil
	}
	if t == charType {
		return &layout{typ: t, kind: opChar, size: 4, order: def, fallible: true}, nil
	}
	if spec := lookupEnum(t); spec != nil {
		return &layout{typ: t, kind: opEnum, size: spec.width, enum: spec, fallible: true}, nil
	}
	switch k := t.Kind(); k {
	case reflect.Bool:
		return &layout{typ: t, kind: opBool, size: 1, fallible: true}, nil
	case reflect.Int8, reflect.Uint8:
		return &layout{typ: t, kind: opByte, size: 1, trivial: true}, nil
	case reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return &layout{
			typ:     t,
			kind:    opScalar,
			size:    int(t.Size()),
			order:   def,
			trivial: def.matchesNative(),
		}, nil
	case reflect.Array:
		elem, err := buildLayout(t.Elem(), def)
		if err != nil {
			return nil, err
		}
		return arrayLayout(t, elem), nil
	case reflect.Struct:
		return buildStructLayout(t, def)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
}

// buildOrdered resolves an explicit little_endian/big_endian field tag.
// The tag is only meaningful on multi-byte scalars, Char, and fixed
// arrays of those; everything else already fixes its own order or has
// none to fix.
func buildOrdered(t reflect.Type, o Order) (*layout, error) {
	if _, ok := carrierTypes[t]; ok {
		return nil, fmt.Errorf("%w: %s already carries a byte order", ErrUnsupported, t)
	}
	if t == charType {
		return &layout{typ: t, kind: opChar, size: 4, order: o, fallible: true}, nil
	}
	if lookupEnum(t) != nil {
		return nil, fmt.Errorf("%w: enum %s fixes its byte order at registration", ErrUnsupported, t)
	}
	switch t.Kind() {
	case reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return &layout{
			typ:     t,
			kind:    opScalar,
			size:    int(t.Size()),
			order:   o,
			trivial: o.matchesNative(),
		}, nil
	case reflect.Array:
		elem, err := buildOrdered(t.Elem(), o)
		if err != nil {
			return nil, err
		}
		return arrayLayout(t, elem), nil
	default:
		return nil, fmt.Errorf("%w: byte order tag on %s", ErrUnsupported, t)
	}
}

func arrayLayout(t reflect.Type, elem *layout) *layout {
	n := t.Len()
	return &layout{
		typ:      t,
		kind:     opArray,
		size:     n * elem.size,
		trivial:  elem.trivial,
		fallible: elem.fallible,
		elem:     elem,
		count:    n,
	}
}

func buildStructLayout(t reflect.Type, def Order) (*layout, error) {
	l := &layout{typ: t, kind: opStruct}
	skipped := false
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			skipped = true
			continue
		}
		fl, err := buildFieldLayout(t, sf, def)
		if err != nil {
			return nil, err
		}
		if sf.Tag.Get("byteable") == "try_transparent" {
			l.fallible = true
		}
		l.fields = append(l.fields, structField{index: i, name: sf.Name, off: l.size, lay: fl})
		l.size += fl.size
		l.fallible = l.fallible || fl.fallible
	}

	l.trivial = !skipped && !l.fallible && int(t.Size()) == l.size
	if l.trivial {
		for _, f := range l.fields {
			if !f.lay.trivial || int(t.Field(f.index).Offset) != f.off {
				l.trivial = false
				break
			}
		}
	}
	return l, nil
}

func buildFieldLayout(t reflect.Type, sf reflect.StructField, def Order) (*layout, error) {
	isStruct := sf.Type.Kind() == reflect.Struct

	switch tag := sf.Tag.Get("byteable"); tag {
	case "":
		if isStruct {
			return nil, fmt.Errorf("%w: field %s.%s needs a transparent or try_transparent tag",
				ErrUnsupported, t, sf.Name)
		}
		return buildLayout(sf.Type, def)
	case "little_endian":
		return buildOrdered(sf.Type, OrderLittle)
	case "big_endian":
		return buildOrdered(sf.Type, OrderBig)
	case "transparent":
		if !isStruct {
			return nil, fmt.Errorf("%w: transparent tag on non-struct field %s.%s",
				ErrUnsupported, t, sf.Name)
		}
		fl, err := buildLayout(sf.Type, def)
		if err != nil {
			return nil, err
		}
		if fl.fallible {
			return nil, fmt.Errorf("%w: field %s.%s decodes fallibly, tag it try_transparent",
				ErrUnsupported, t, sf.Name)
		}
		return fl, nil
	case "try_transparent":
		if !isStruct {
			return nil, fmt.Errorf("%w: try_transparent tag on non-struct field %s.%s",
				ErrUnsupported, t, sf.Name)
		}
		return buildLayout(sf.Type, def)
	default:
		return nil, fmt.Errorf("%w: unknown byteable tag %q on field %s.%s",
			ErrUnsupported, tag, t, sf.Name)
	}
}
