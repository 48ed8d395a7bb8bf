package byteable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Priority is the canonical sparse enum: four declared discriminants
// with large gaps, one byte wide, native order (order is moot at one
// byte).
type Priority uint8

const (
	PriorityLow  Priority = 1
	PriorityMid  Priority = 5
	PriorityHigh Priority = 10
	PriorityMax  Priority = 100
)

// Temperature exercises signed discriminants and an explicit wire
// order wider than one byte.
type Temperature int16

const (
	TempFrozen  Temperature = -40
	TempZero    Temperature = 0
	TempWarm    Temperature = 100
	TempBoiling Temperature = 1000
)

func init() {
	MustRegisterEnum(OrderNative, PriorityLow, PriorityMid, PriorityHigh, PriorityMax)
	MustRegisterEnum(OrderBig, TempFrozen, TempZero, TempWarm, TempBoiling)
}

func TestEnumEncodeTotal(t *testing.T) {
	c, err := NewTryCodec[Priority](Options{})
	require.NoError(t, err)
	require.Equal(t, 1, c.Size())

	require.Equal(t, []byte{1}, c.Encode(PriorityLow))
	require.Equal(t, []byte{5}, c.Encode(PriorityMid))
	require.Equal(t, []byte{10}, c.Encode(PriorityHigh))
	require.Equal(t, []byte{100}, c.Encode(PriorityMax))
}

func TestEnumDecodePartial(t *testing.T) {
	c, err := NewTryCodec[Priority](Options{})
	require.NoError(t, err)

	declared := map[byte]Priority{1: PriorityLow, 5: PriorityMid, 10: PriorityHigh, 100: PriorityMax}
	for b := 0; b < 256; b++ {
		got, err := c.Decode([]byte{byte(b)})
		if want, ok := declared[byte(b)]; ok {
			require.NoError(t, err)
			require.Equal(t, want, got)
			continue
		}
		var derr *InvalidDiscriminantError
		require.ErrorAs(t, err, &derr, "discriminant %d must be rejected", b)
		assert.Equal(t, int64(b), derr.Value)
		assert.Equal(t, "byteable.Priority", derr.Type)
	}
}

func TestEnumSignedBigEndian(t *testing.T) {
	c, err := NewTryCodec[Temperature](Options{})
	require.NoError(t, err)
	require.Equal(t, 2, c.Size())

	// -40 as big-endian int16 two's complement.
	require.Equal(t, []byte{0xFF, 0xD8}, c.Encode(TempFrozen))
	require.Equal(t, []byte{0x03, 0xE8}, c.Encode(TempBoiling))

	for _, v := range []Temperature{TempFrozen, TempZero, TempWarm, TempBoiling} {
		got, err := c.Decode(c.Encode(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	_, err = c.Decode([]byte{0x00, 0x01})
	var derr *InvalidDiscriminantError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, int64(1), derr.Value)
	assert.True(t, derr.Signed)

	// Rejected negative discriminants come back sign-extended.
	_, err = c.Decode([]byte{0xFF, 0xFF})
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, int64(-1), derr.Value)
}

func TestEnumRegistrationErrors(t *testing.T) {
	type ghost uint16
	err := RegisterEnum[ghost](OrderNative)
	assert.ErrorIs(t, err, ErrBadEnum)

	type twin uint16
	err = RegisterEnum(OrderNative, twin(1), twin(2), twin(1))
	assert.ErrorIs(t, err, ErrBadEnum)

	err = RegisterEnum(OrderNative, uint8(1), uint8(2))
	assert.ErrorIs(t, err, ErrBadEnum, "predeclared types cannot be enums")

	type once uint8
	require.NoError(t, RegisterEnum(OrderNative, once(1)))
	err = RegisterEnum(OrderNative, once(1), once(2))
	assert.ErrorIs(t, err, ErrBadEnum, "double registration must fail")
}

func TestEnumIsNotBitcastable(t *testing.T) {
	_, err := NewCodec[Priority](Options{})
	assert.ErrorIs(t, err, ErrFallible)
}

func TestEnumFieldInsideRecord(t *testing.T) {
	type job struct {
		ID   uint8
		Prio Priority
	}
	c, err := NewTryCodec[job](Options{})
	require.NoError(t, err)
	require.Equal(t, 2, c.Size())

	v := job{ID: 7, Prio: PriorityHigh}
	require.Equal(t, []byte{7, 10}, c.Encode(v))
	got, err := c.Decode([]byte{7, 10})
	require.NoError(t, err)
	require.Equal(t, v, got)

	_, err = c.Decode([]byte{7, 2})
	var derr *InvalidDiscriminantError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, int64(2), derr.Value)
}
