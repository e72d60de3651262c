package carton

import "fmt"

// LazySegment defers decoding of a sub-range of a shared immutable
// byte buffer. It keeps the type name the wire reported alongside the
// [Start, End) range the payload occupies. Segments are created during
// wire-to-value reconstruction and consumed the first time a typed
// accessor resolves the owning Value.
type LazySegment struct {
	TypeName string
	Buf      []byte
	Start    int
	End      int

	// de is the deserializer registered for TypeName at reconstruction
	// time, so resolution does not need the registry again. It is nil
	// for Bytes-category segments, which carry no codec.
	de DeserializeFunc
}

func newLazySegment(name string, buf []byte, start, end int, de DeserializeFunc) (*LazySegment, error) {
	if start < 0 || start > end || end > len(buf) {
		return nil, internalErr(fmt.Sprintf("segment [%d,%d) out of range for %d byte buffer", start, end, len(buf)))
	}
	return &LazySegment{TypeName: name, Buf: buf, Start: start, End: end, de: de}, nil
}

// Bytes returns the referenced sub-range. The buffer is shared;
// callers must not modify it.
func (s *LazySegment) Bytes() []byte { return s.Buf[s.Start:s.End] }

// Len returns the payload size in bytes.
func (s *LazySegment) Len() int { return s.End - s.Start }
