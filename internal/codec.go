// Package internal implements the carton payload codec: the single
// binary convention used for every registered type.
//
// The encoding is positional and fixed-width, little-endian throughout:
//
//	bool                   1 byte, 0x00 or 0x01
//	int8/uint8             1 byte
//	int16/uint16           2 bytes
//	int32/uint32/float32   4 bytes (floats as IEEE-754 bits)
//	int64/uint64/int/uint  8 bytes (int and uint widen to 64 bits)
//	float64                8 bytes
//	string                 u32 byte length + UTF-8 bytes
//	[]byte                 u32 length + raw bytes
//	[]T                    u32 element count + elements in order
//	map[K]V                u32 entry count + (key, value) pairs,
//	                       sorted by encoded key bytes
//	struct                 exported fields in declaration order;
//	                       fields tagged `carton:"-"` are skipped
//	*T                     1 presence byte (0x00 nil, 0x01 set),
//	                       then the pointee when set
//
// Decoding is bounds-checked and rejects trailing input.
package internal

import (
	"bytes"
	"encoding/binary"
	"math"
	"reflect"
	"sort"
	"unicode/utf8"
)

// Encode serializes v using the payload convention above.
func Encode(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, &Error{Detail: "cannot encode untyped nil"}
	}
	buf := GetBuffer()
	defer PutBuffer(buf)
	if err := encodeValue(buf, rv); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Decode deserializes data into out, which must be a non-nil pointer.
// The input must be consumed exactly.
func Decode(data []byte, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &Error{Detail: "decode target must be a non-nil pointer"}
	}
	r := &reader{buf: data}
	if err := decodeValue(r, rv.Elem()); err != nil {
		return err
	}
	if r.remaining() != 0 {
		return r.errf("%d trailing bytes after value", r.remaining())
	}
	return nil
}

func writeFixed(b *bytes.Buffer, v uint64, width int) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.Write(tmp[:width])
}

func encodeValue(b *bytes.Buffer, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			b.WriteByte(0x00)
			return nil
		}
		b.WriteByte(0x01)
		return encodeValue(b, rv.Elem())
	case reflect.Bool:
		if rv.Bool() {
			b.WriteByte(0x01)
		} else {
			b.WriteByte(0x00)
		}
		return nil
	case reflect.Int8:
		b.WriteByte(byte(rv.Int()))
		return nil
	case reflect.Int16:
		writeFixed(b, uint64(uint16(rv.Int())), 2)
		return nil
	case reflect.Int32:
		writeFixed(b, uint64(uint32(rv.Int())), 4)
		return nil
	case reflect.Int, reflect.Int64:
		writeFixed(b, uint64(rv.Int()), 8)
		return nil
	case reflect.Uint8:
		b.WriteByte(byte(rv.Uint()))
		return nil
	case reflect.Uint16:
		writeFixed(b, rv.Uint(), 2)
		return nil
	case reflect.Uint32:
		writeFixed(b, rv.Uint(), 4)
		return nil
	case reflect.Uint, reflect.Uint64:
		writeFixed(b, rv.Uint(), 8)
		return nil
	case reflect.Float32:
		writeFixed(b, uint64(math.Float32bits(float32(rv.Float()))), 4)
		return nil
	case reflect.Float64:
		writeFixed(b, math.Float64bits(rv.Float()), 8)
		return nil
	case reflect.String:
		s := rv.String()
		if !utf8.ValidString(s) {
			return &Error{Detail: "string is not valid UTF-8"}
		}
		writeFixed(b, uint64(len(s)), 4)
		b.WriteString(s)
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			writeFixed(b, uint64(rv.Len()), 4)
			b.Write(rv.Bytes())
			return nil
		}
		writeFixed(b, uint64(rv.Len()), 4)
		for i := 0; i < rv.Len(); i++ {
			if err := encodeValue(b, rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return encodeMap(b, rv)
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if f.PkgPath != "" || f.Tag.Get("carton") == "-" {
				continue
			}
			if err := encodeValue(b, rv.Field(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return &Error{Detail: "unsupported kind " + rv.Kind().String()}
	}
}

// encodeMap writes entries sorted by their encoded key bytes so that
// eager serialization is deterministic.
func encodeMap(b *bytes.Buffer, rv reflect.Value) error {
	type entry struct {
		key []byte
		val reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		kb := GetBuffer()
		if err := encodeValue(kb, iter.Key()); err != nil {
			PutBuffer(kb)
			return err
		}
		key := make([]byte, kb.Len())
		copy(key, kb.Bytes())
		PutBuffer(kb)
		entries = append(entries, entry{key: key, val: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].key, entries[j].key) < 0
	})
	writeFixed(b, uint64(len(entries)), 4)
	for _, e := range entries {
		b.Write(e.key)
		if err := encodeValue(b, e.val); err != nil {
			return err
		}
	}
	return nil
}

func decodeValue(r *reader, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer:
		tag, err := r.u8()
		if err != nil {
			return err
		}
		switch tag {
		case 0x00:
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		case 0x01:
			rv.Set(reflect.New(rv.Type().Elem()))
			return decodeValue(r, rv.Elem())
		default:
			return r.errf("invalid presence byte 0x%02x", tag)
		}
	case reflect.Bool:
		b, err := r.u8()
		if err != nil {
			return err
		}
		switch b {
		case 0x00:
			rv.SetBool(false)
		case 0x01:
			rv.SetBool(true)
		default:
			return r.errf("invalid bool byte 0x%02x", b)
		}
		return nil
	case reflect.Int8:
		b, err := r.u8()
		if err != nil {
			return err
		}
		rv.SetInt(int64(int8(b)))
		return nil
	case reflect.Int16:
		v, err := r.u16()
		if err != nil {
			return err
		}
		rv.SetInt(int64(int16(v)))
		return nil
	case reflect.Int32:
		v, err := r.u32()
		if err != nil {
			return err
		}
		rv.SetInt(int64(int32(v)))
		return nil
	case reflect.Int, reflect.Int64:
		v, err := r.u64()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))
		return nil
	case reflect.Uint8:
		b, err := r.u8()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(b))
		return nil
	case reflect.Uint16:
		v, err := r.u16()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case reflect.Uint32:
		v, err := r.u32()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
		return nil
	case reflect.Uint, reflect.Uint64:
		v, err := r.u64()
		if err != nil {
			return err
		}
		rv.SetUint(v)
		return nil
	case reflect.Float32:
		v, err := r.u32()
		if err != nil {
			return err
		}
		rv.SetFloat(float64(math.Float32frombits(v)))
		return nil
	case reflect.Float64:
		v, err := r.u64()
		if err != nil {
			return err
		}
		rv.SetFloat(math.Float64frombits(v))
		return nil
	case reflect.String:
		n, err := r.length()
		if err != nil {
			return err
		}
		b, err := r.bytes(n)
		if err != nil {
			return err
		}
		if !utf8.Valid(b) {
			return r.errf("string is not valid UTF-8")
		}
		rv.SetString(string(b))
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			n, err := r.length()
			if err != nil {
				return err
			}
			b, err := r.bytes(n)
			if err != nil {
				return err
			}
			rv.SetBytes(append([]byte(nil), b...))
			return nil
		}
		n, err := r.length()
		if err != nil {
			return err
		}
		if n == 0 {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		out := reflect.MakeSlice(rv.Type(), n, n)
		for i := 0; i < n; i++ {
			if err := decodeValue(r, out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil
	case reflect.Map:
		n, err := r.length()
		if err != nil {
			return err
		}
		if n == 0 {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		rt := rv.Type()
		out := reflect.MakeMapWithSize(rt, n)
		for i := 0; i < n; i++ {
			key := reflect.New(rt.Key()).Elem()
			if err := decodeValue(r, key); err != nil {
				return err
			}
			if out.MapIndex(key).IsValid() {
				return r.errf("duplicate map key")
			}
			val := reflect.New(rt.Elem()).Elem()
			if err := decodeValue(r, val); err != nil {
				return err
			}
			out.SetMapIndex(key, val)
		}
		rv.Set(out)
		return nil
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if f.PkgPath != "" || f.Tag.Get("carton") == "-" {
				continue
			}
			if err := decodeValue(r, rv.Field(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return r.errf("unsupported kind %s", rv.Kind().String())
	}
}
