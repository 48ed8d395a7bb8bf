package byteable

import "io"

// The I/O adapters glue a codec to a caller-supplied byte stream. They
// read or write exactly Size() bytes per value and add no buffering or
// retry of their own: stream errors pass through verbatim, and a
// TryCodec read can additionally fail with one of the decode errors.

// ReadValue reads exactly Size() bytes from r and decodes them. A short
// stream surfaces as io.ErrUnexpectedEOF (or io.EOF when nothing was
// read), exactly as io.ReadFull reports it.
func (c *Codec[T]) ReadValue(r io.Reader) (T, error) {
	buf := make([]byte, c.lay.size)
	if _, err := io.ReadFull(r, buf); err != nil {
		var zero T
		return zero, err
	}
	return c.Decode(buf), nil
}

// WriteValue encodes v and writes the full encoding to w.
func (c *Codec[T]) WriteValue(w io.Writer, v T) error {
	_, err := w.Write(c.Encode(v))
	return err
}

// ReadValue reads exactly Size() bytes from r and decodes them. The
// returned error is either the stream's own error or a decode error
// such as *InvalidDiscriminantError; use errors.As to tell them apart.
func (c *TryCodec[T]) ReadValue(r io.Reader) (T, error) {
	buf := make([]byte, c.lay.size)
	if _, err := io.ReadFull(r, buf); err != nil {
		var zero T
		return zero, err
	}
	return c.Decode(buf)
}

// WriteValue encodes v and writes the full encoding to w. Encoding is
// total, so the only error source is the stream.
func (c *TryCodec[T]) WriteValue(w io.Writer, v T) error {
	_, err := w.Write(c.Encode(v))
	return err
}
