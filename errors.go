package byteable

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported marks a declaration the layout builder cannot
	// encode: dynamically sized fields, pointers, platform-width
	// integers, or struct fields missing a transparent tag.
	ErrUnsupported = errors.New("byteable: unsupported type")

	// ErrFallible is returned by NewCodec when the type contains a
	// field whose decode can fail; use NewTryCodec instead.
	ErrFallible = errors.New("byteable: type requires fallible decoding")

	// ErrBadEnum marks an invalid enum registration.
	ErrBadEnum = errors.New("byteable: invalid enum registration")
)

// InvalidDiscriminantError reports a decoded integer that matches no
// declared variant of a registered enum.
type InvalidDiscriminantError struct {
	Type   string // fully qualified enum type name
	Value  int64  // rejected discriminant, sign-extended for signed enums
	Signed bool
}

func (e *InvalidDiscriminantError) Error() string {
	if e.Signed {
		return fmt.Sprintf("byteable: invalid discriminant %d for enum %s", e.Value, e.Type)
	}
	return fmt.Sprintf("byteable: invalid discriminant %d for enum %s", uint64(e.Value), e.Type)
}

// InvalidBoolError reports a boolean byte outside the two valid
// encodings 0x00 and 0x01.
type InvalidBoolError struct {
	Value byte
}

func (e *InvalidBoolError) Error() string {
	return fmt.Sprintf("byteable: invalid boolean byte %#02x", e.Value)
}

// InvalidCharError reports a decoded integer that is not a Unicode
// scalar value: surrogates and anything above U+10FFFF.
type InvalidCharError struct {
	Value uint32
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("byteable: invalid code point %#x", e.Value)
}
