package carton

import (
	"encoding/binary"
	"fmt"
)

// resolve decodes a still-lazy payload into a concrete T and swaps the
// segment for the decoded allocation. It is a no-op on eager values.
// On any failure the value is left lazy and untouched, so a caller can
// retry with the correct type.
func resolve[T any](v *Value) error {
	seg := v.box.lazy
	if seg == nil {
		return nil
	}
	want := typeNameOf(typeFor[T]())
	if !compatibleTypeNames(want, seg.TypeName) {
		return typeMismatch(want, seg.TypeName)
	}
	if seg.de == nil {
		return internalErr("segment for " + seg.TypeName + " has no deserializer")
	}
	decoded, err := seg.de(seg.Bytes())
	if err != nil {
		return decodeErr(seg.TypeName, err)
	}
	p, ok := decoded.(*T)
	if !ok {
		return typeMismatch(want, seg.TypeName)
	}
	v.box.setEager(want, p)
	return nil
}

// AsRef returns a shared pointer to the Primitive payload, decoding it
// first if the value is still lazy. Every call on the same value (and
// on clones taken after resolution) returns the identical pointer.
func AsRef[T any](v *Value) (*T, error) {
	if v.category != CategoryPrimitive {
		return nil, categoryMismatch(CategoryPrimitive, v.category)
	}
	if err := resolve[T](v); err != nil {
		return nil, err
	}
	return unbox[T](&v.box)
}

// As returns a copy of the Primitive payload.
func As[T any](v *Value) (T, error) {
	p, err := AsRef[T](v)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AsListRef returns a shared pointer to the List payload's slice.
func AsListRef[T any](v *Value) (*[]T, error) {
	if v.category != CategoryList {
		return nil, categoryMismatch(CategoryList, v.category)
	}
	if err := resolve[[]T](v); err != nil {
		return nil, err
	}
	return unbox[[]T](&v.box)
}

// AsMapRef returns the Map payload. Go maps are reference types, so
// the returned map shares storage with the value; repeated calls see
// the same entries.
func AsMapRef[K comparable, V any](v *Value) (map[K]V, error) {
	if v.category != CategoryMap {
		return nil, categoryMismatch(CategoryMap, v.category)
	}
	if err := resolve[map[K]V](v); err != nil {
		return nil, err
	}
	p, err := unbox[map[K]V](&v.box)
	if err != nil {
		return nil, err
	}
	return *p, nil
}

// AsStructRef returns a shared pointer to the Struct payload.
func AsStructRef[T any](v *Value) (*T, error) {
	if v.category != CategoryStruct {
		return nil, categoryMismatch(CategoryStruct, v.category)
	}
	if err := resolve[T](v); err != nil {
		return nil, err
	}
	return unbox[T](&v.box)
}

// AsBytes returns the Bytes payload. A lazy payload is a 4-byte
// big-endian length followed by the raw bytes; no per-type codec is
// consulted. The raw bytes are copied out of the shared wire buffer on
// first access and the copy is shared by subsequent calls.
func AsBytes(v *Value) ([]byte, error) {
	if v.category != CategoryBytes {
		return nil, categoryMismatch(CategoryBytes, v.category)
	}
	if seg := v.box.lazy; seg != nil {
		raw := seg.Bytes()
		if len(raw) < 4 {
			return nil, decodeErr(seg.TypeName, fmt.Errorf("byte payload shorter than its length prefix: %d bytes", len(raw)))
		}
		n := binary.BigEndian.Uint32(raw)
		if int(n) != len(raw)-4 {
			return nil, decodeErr(seg.TypeName, fmt.Errorf("byte payload length prefix %d does not match %d remaining bytes", n, len(raw)-4))
		}
		out := make([]byte, n)
		copy(out, raw[4:])
		v.box.setEager(typeNameOf(typeFor[[]byte]()), &out)
	}
	p, err := unbox[[]byte](&v.box)
	if err != nil {
		return nil, err
	}
	return *p, nil
}
