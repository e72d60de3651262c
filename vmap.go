package carton

// VMap is a thin builder over a string-keyed map that converts
// directly into a Map-category Value. It exists for call sites that
// assemble request or event parameters field by field.
type VMap[T any] struct {
	m map[string]T
}

// NewVMap returns an empty VMap.
func NewVMap[T any]() *VMap[T] {
	return &VMap[T]{m: make(map[string]T)}
}

// VMapFrom wraps an existing map. The map is not copied.
func VMapFrom[T any](m map[string]T) *VMap[T] {
	if m == nil {
		m = make(map[string]T)
	}
	return &VMap[T]{m: m}
}

// Insert sets key to val and returns the VMap for chaining.
func (v *VMap[T]) Insert(key string, val T) *VMap[T] {
	v.m[key] = val
	return v
}

// Get returns the value for key and whether it was present.
func (v *VMap[T]) Get(key string) (T, bool) {
	val, ok := v.m[key]
	return val, ok
}

// GetOr returns the value for key, or def when absent.
func (v *VMap[T]) GetOr(key string, def T) T {
	if val, ok := v.m[key]; ok {
		return val
	}
	return def
}

// Len returns the number of entries.
func (v *VMap[T]) Len() int { return len(v.m) }

// Into returns the underlying map.
func (v *VMap[T]) Into() map[string]T { return v.m }

// Value wraps the map in a Map-category Value. The Value shares the
// underlying map; later Inserts are visible through it.
func (v *VMap[T]) Value() *Value { return NewMap(v.m) }
