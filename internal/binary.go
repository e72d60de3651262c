package internal

import (
	"encoding/binary"
	"fmt"
)

// Error carries offset and detail for codec diagnostics.
type Error struct {
	Offset int
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Offset > 0 {
		return fmt.Sprintf("codec: %s at offset %d", e.Detail, e.Offset)
	}
	return fmt.Sprintf("codec: %s", e.Detail)
}

// reader is a bounds-checked cursor over an immutable byte slice.
type reader struct {
	buf []byte
	off int
}

func (r *reader) errf(format string, args ...any) *Error {
	return &Error{Offset: r.off, Detail: fmt.Sprintf(format, args...)}
}

func (r *reader) remaining() int { return len(r.buf) - r.off }

func (r *reader) u8() (byte, error) {
	if r.remaining() < 1 {
		return 0, r.errf("unexpected end of input")
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *reader) u16() (uint16, error) {
	if r.remaining() < 2 {
		return 0, r.errf("unexpected end of input")
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, r.errf("unexpected end of input")
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) u64() (uint64, error) {
	if r.remaining() < 8 {
		return 0, r.errf("unexpected end of input")
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

// length reads a u32 length prefix and checks it against the remaining input.
func (r *reader) length() (int, error) {
	n, err := r.u32()
	if err != nil {
		return 0, err
	}
	if int64(n) > int64(r.remaining()) {
		return 0, r.errf("length %d overruns remaining %d bytes", n, r.remaining())
	}
	return int(n), nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, r.errf("unexpected end of input")
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}
