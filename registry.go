package carton

import (
	"encoding/binary"

	"github.com/openpayload/carton/internal"
	"github.com/openpayload/carton/log"
)

// SerializeFunc encodes the payload behind a type-erased pointer. The
// argument is always the *T the registry stored the function under.
type SerializeFunc func(v any) ([]byte, error)

// DeserializeFunc decodes payload bytes into a freshly allocated *T.
type DeserializeFunc func(data []byte) (any, error)

// Registry maps type names to payload codecs and implements the wire
// format around them. Registration happens during setup; once Seal is
// called the codec set is frozen and the registry is safe for
// concurrent Serialize and Deserialize calls.
type Registry struct {
	serializers   map[string]SerializeFunc
	deserializers map[string]DeserializeFunc
	sealed        bool
	logger        log.Logger
}

// NewRegistry returns an empty, unsealed registry with no logger.
func NewRegistry() *Registry {
	return NewRegistryWithLogger(nil)
}

// NewRegistryWithLogger returns an empty, unsealed registry that logs
// diagnostics through l. A nil logger disables logging.
func NewRegistryWithLogger(l log.Logger) *Registry {
	return &Registry{
		serializers:   make(map[string]SerializeFunc),
		deserializers: make(map[string]DeserializeFunc),
		logger:        l,
	}
}

// DefaultRegistry returns an unsealed registry preloaded with codecs
// for the common primitive, list, and string-keyed map types.
func DefaultRegistry() *Registry {
	return DefaultRegistryWithLogger(nil)
}

// DefaultRegistryWithLogger is DefaultRegistry with diagnostics routed
// through l.
func DefaultRegistryWithLogger(l log.Logger) *Registry {
	r := NewRegistryWithLogger(l)
	registerDefaults(r)
	return r
}

// registerDefaults cannot fail on an unsealed registry, so the error
// returns are discarded.
func registerDefaults(r *Registry) {
	_ = Register[string](r)
	_ = Register[bool](r)
	_ = Register[int32](r)
	_ = Register[int64](r)
	_ = Register[float32](r)
	_ = Register[float64](r)

	_ = Register[[]string](r)
	_ = Register[[]bool](r)
	_ = Register[[]int32](r)
	_ = Register[[]int64](r)
	_ = Register[[]float32](r)
	_ = Register[[]float64](r)
	_ = Register[[]byte](r)

	_ = RegisterMap[string, string](r)
	_ = RegisterMap[string, int32](r)
	_ = RegisterMap[string, int64](r)
	_ = RegisterMap[string, float64](r)
	_ = RegisterMap[string, bool](r)
}

// Register installs the built-in codec for T under T's full type name.
// A plain named type is additionally reachable by its short name for
// deserialization; the first registration of a short name wins and
// later claimants keep only their full name.
func Register[T any](r *Registry) error {
	full := typeNameOf(typeFor[T]())
	ser := func(v any) ([]byte, error) {
		p, ok := v.(*T)
		if !ok {
			return nil, internalErr("serializer for " + full + " invoked with a different type")
		}
		return internal.Encode(*p)
	}
	de := func(data []byte) (any, error) {
		out := new(T)
		if err := internal.Decode(data, out); err != nil {
			return nil, err
		}
		return out, nil
	}
	return r.RegisterNamed(full, ser, de)
}

// RegisterMap installs the built-in codec for map[K]V.
func RegisterMap[K comparable, V any](r *Registry) error {
	return Register[map[K]V](r)
}

// RegisterNamed installs a custom codec under an explicit name. ser
// may be nil for a deserialize-only registration.
func (r *Registry) RegisterNamed(name string, ser SerializeFunc, de DeserializeFunc) error {
	if r.sealed {
		return &Error{Kind: KindSealedRegistry, Detail: "cannot register " + name}
	}
	if de == nil {
		return internalErr("nil deserializer for " + name)
	}
	if ser != nil {
		r.serializers[name] = ser
	}
	r.deserializers[name] = de
	if short := shortTypeName(name); short != name {
		if _, taken := r.deserializers[short]; !taken {
			r.deserializers[short] = de
		}
	}
	return nil
}

// Seal freezes the codec set. Registration attempts after Seal fail
// with KindSealedRegistry and leave the registry unchanged.
func (r *Registry) Seal() { r.sealed = true }

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool { return r.sealed }

// Registered reports whether a deserializer exists for name.
func (r *Registry) Registered(name string) bool {
	_, ok := r.deserializers[name]
	return ok
}

// Serialize encodes v. A still-lazy payload is re-emitted verbatim
// without decoding it, so a relayed value is byte-identical to what
// was received.
func (r *Registry) Serialize(v *Value) ([]byte, error) {
	if v == nil {
		return nil, internalErr("serialize nil value")
	}
	if seg := v.box.lazy; seg != nil {
		if v.category == CategoryNull {
			return nil, internalErr("lazy payload on a null value")
		}
		out, werr := appendWireHeader(nil, v.category, seg.TypeName)
		if werr != nil {
			return nil, werr
		}
		if r.logger != nil {
			r.logger.Debug("re-emitting lazy payload", "type", seg.TypeName, "bytes", seg.Len())
		}
		return append(out, seg.Bytes()...), nil
	}
	if v.category == CategoryNull {
		return []byte{byte(CategoryNull)}, nil
	}
	out, werr := appendWireHeader(nil, v.category, v.box.name)
	if werr != nil {
		return nil, werr
	}
	if v.category == CategoryBytes {
		p, err := unbox[[]byte](&v.box)
		if err != nil {
			return nil, err
		}
		return appendBytesPayload(out, *p), nil
	}
	ser, ok := r.serializers[v.box.name]
	if !ok {
		return nil, unknownType(v.box.name)
	}
	if r.logger != nil {
		r.logger.Debug("serializing value", "type", v.box.name, "category", v.category)
	}
	payload, err := ser(v.box.ref)
	if err != nil {
		return nil, err
	}
	return append(out, payload...), nil
}

// Deserialize reconstructs a Value from wire bytes without decoding
// the payload. The payload stays a lazy segment over data until a
// typed accessor resolves it; callers must not modify data afterwards.
// Non-null inputs require a registered deserializer so a later resolve
// cannot hit an unknown name.
func (r *Registry) Deserialize(data []byte) (*Value, error) {
	h, werr := parseWireHeader(data)
	if werr != nil {
		return nil, werr
	}
	if h.category == CategoryNull {
		return Null(), nil
	}
	if r.logger != nil {
		r.logger.Debug("deserialized header", "category", h.category, "type", h.typeName, "bytes", len(data)-h.payload)
	}
	end := len(data)
	var de DeserializeFunc
	if h.category == CategoryBytes {
		payload := data[h.payload:]
		if len(payload) < 4 {
			return nil, malformed("byte payload shorter than its length prefix")
		}
		n := int(binary.BigEndian.Uint32(payload))
		if n != len(payload)-4 {
			return nil, malformed("byte payload length prefix does not match input")
		}
		end = h.payload + 4 + n
	} else if de = r.deserializers[h.typeName]; de == nil {
		return nil, unknownType(h.typeName)
	}
	seg, err := newLazySegment(h.typeName, data, h.payload, end, de)
	if err != nil {
		return nil, err
	}
	return &Value{category: h.category, box: boxLazy(seg)}, nil
}
