package byteable

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteValue(t *testing.T) {
	c, err := NewCodec[WireHeader](Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	want := []WireHeader{
		{Magic: PutU32BE(0x11223344), Ver: 1, Flags: 0, Len: PutU16LE(10)},
		{Magic: PutU32BE(0x55667788), Ver: 2, Flags: 7, Len: PutU16LE(20)},
	}
	for _, h := range want {
		require.NoError(t, c.WriteValue(&buf, h))
	}
	require.Equal(t, 2*c.Size(), buf.Len())

	for _, h := range want {
		got, err := c.ReadValue(&buf)
		require.NoError(t, err)
		require.Equal(t, h, got)
	}
	_, err = c.ReadValue(&buf)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadValueShortStream(t *testing.T) {
	c, err := NewCodec[uint64](Options{Order: OrderBig})
	require.NoError(t, err)

	_, err = c.ReadValue(bytes.NewReader([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestTryReadValueDecodeFailure(t *testing.T) {
	c, err := NewTryCodec[Priority](Options{})
	require.NoError(t, err)

	_, err = c.ReadValue(bytes.NewReader([]byte{2}))
	var derr *InvalidDiscriminantError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, int64(2), derr.Value)

	got, err := c.ReadValue(bytes.NewReader([]byte{100}))
	require.NoError(t, err)
	require.Equal(t, PriorityMax, got)
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteValueStreamError(t *testing.T) {
	c, err := NewCodec[uint32](Options{Order: OrderLittle})
	require.NoError(t, err)

	sentinel := errors.New("disk full")
	assert.ErrorIs(t, c.WriteValue(failWriter{err: sentinel}, 1), sentinel)
}

func TestZeroSizeReadWrite(t *testing.T) {
	type empty struct{}
	c, err := NewCodec[empty](Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.WriteValue(&buf, empty{}))
	require.Zero(t, buf.Len())
	_, err = c.ReadValue(&buf)
	require.NoError(t, err)
}
