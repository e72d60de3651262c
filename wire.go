package carton

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Encoded value layout:
//
//	byte 0        category marker (see ValueCategory)
//	byte 1        type name length N (absent for Null)
//	bytes 2..2+N  UTF-8 type name
//	rest          payload bytes
//
// Null values are the single marker byte. Bytes-category payloads are
// a 4-byte big-endian length followed by the raw bytes; every other
// category's payload is produced by the registered codec for the named
// type.

const maxTypeNameLen = 255

type wireHeader struct {
	category ValueCategory
	typeName string
	payload  int // offset of the first payload byte
}

func parseWireHeader(data []byte) (wireHeader, *Error) {
	if len(data) == 0 {
		return wireHeader{}, malformed("empty input")
	}
	cat, ok := categoryFromMarker(data[0])
	if !ok {
		return wireHeader{}, malformed(fmt.Sprintf("invalid category marker 0x%02x", data[0]))
	}
	if cat == CategoryNull {
		return wireHeader{category: cat, payload: 1}, nil
	}
	if len(data) < 2 {
		return wireHeader{}, malformed("input ends before the type name length")
	}
	n := int(data[1])
	if len(data) < 2+n {
		return wireHeader{}, malformed(fmt.Sprintf("%d byte type name overruns %d byte input", n, len(data)))
	}
	name := data[2 : 2+n]
	if !utf8.Valid(name) {
		return wireHeader{}, malformed("type name is not valid UTF-8")
	}
	return wireHeader{category: cat, typeName: string(name), payload: 2 + n}, nil
}

func appendWireHeader(dst []byte, cat ValueCategory, name string) ([]byte, *Error) {
	dst = append(dst, byte(cat))
	if cat == CategoryNull {
		return dst, nil
	}
	if len(name) > maxTypeNameLen {
		return nil, malformed(fmt.Sprintf("type name longer than %d bytes: %q", maxTypeNameLen, name))
	}
	dst = append(dst, byte(len(name)))
	return append(dst, name...), nil
}

func appendBytesPayload(dst, raw []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(raw)))
	return append(dst, raw...)
}
