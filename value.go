package carton

import "fmt"

// Value is the public dynamic value type: a category plus one
// type-erased payload. The payload may still be an undecoded segment
// if the Value came off the wire; typed accessors resolve it in place
// on first use.
//
// A Value is not safe for concurrent resolution: the lazy-to-eager
// transition mutates the Value, so a caller sharing one instance
// across goroutines must serialize access. Distinct instances,
// including clones taken before resolution, are independent.
type Value struct {
	category ValueCategory
	box      Box
}

// NewPrimitive creates a Primitive-category value from v.
func NewPrimitive[T any](v T) *Value {
	return &Value{category: CategoryPrimitive, box: boxOf(v)}
}

// NewList creates a List-category value from a slice.
func NewList[T any](items []T) *Value {
	return &Value{category: CategoryList, box: boxOf(items)}
}

// NewMap creates a Map-category value from a map.
func NewMap[K comparable, V any](m map[K]V) *Value {
	return &Value{category: CategoryMap, box: boxOf(m)}
}

// NewStruct creates a Struct-category value from a user-defined record.
func NewStruct[T any](v T) *Value {
	return &Value{category: CategoryStruct, box: boxOf(v)}
}

// NewBytes creates a Bytes-category value from a raw byte blob.
func NewBytes(b []byte) *Value {
	return &Value{category: CategoryBytes, box: boxOf(b)}
}

// Null returns the null value.
func Null() *Value {
	return &Value{category: CategoryNull}
}

// Category returns the value's fixed category.
func (v *Value) Category() ValueCategory { return v.category }

// IsNull reports whether the category is Null.
func (v *Value) IsNull() bool { return v.category == CategoryNull }

// IsLazy reports whether the payload is still an undecoded segment.
func (v *Value) IsLazy() bool { return v.box.IsLazy() }

// TypeName returns the recorded type name of the payload.
func (v *Value) TypeName() string { return v.box.TypeName() }

// Clone returns a new instance over the same payload allocation. If
// the value is still lazy the clone gets its own segment descriptor
// over the shared buffer and resolves independently of v.
func (v *Value) Clone() *Value {
	c := *v
	c.box = v.box.Clone()
	return &c
}

// Equal reports whether two values have the same category, type name,
// and payload allocation. This is an identity check, not a structural
// comparison: two independently constructed but structurally identical
// values are not Equal.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.category != o.category {
		return false
	}
	if v.category == CategoryNull {
		return true
	}
	if v.box.lazy != nil || o.box.lazy != nil {
		return v.box.lazy == o.box.lazy
	}
	return v.box.name == o.box.name && v.box.ref == o.box.ref
}

// String renders a diagnostic summary. Lazy values report their
// recorded type and pending size without decoding anything.
func (v *Value) String() string {
	if v.box.lazy != nil {
		return fmt.Sprintf("Lazy<%s>(%d bytes)", v.box.lazy.TypeName, v.box.lazy.Len())
	}
	switch v.category {
	case CategoryNull:
		return "null"
	case CategoryPrimitive:
		switch p := v.box.ref.(type) {
		case *string:
			return fmt.Sprintf("%q", *p)
		case *bool:
			return fmt.Sprintf("%v", *p)
		case *int32:
			return fmt.Sprintf("%d", *p)
		case *int64:
			return fmt.Sprintf("%d", *p)
		case *float32:
			return fmt.Sprintf("%v", *p)
		case *float64:
			return fmt.Sprintf("%v", *p)
		default:
			return fmt.Sprintf("Primitive<%s>", v.box.name)
		}
	case CategoryList:
		return fmt.Sprintf("List<%s>", v.box.name)
	case CategoryMap:
		return fmt.Sprintf("Map<%s>", v.box.name)
	case CategoryStruct:
		return fmt.Sprintf("Struct<%s>", v.box.name)
	case CategoryBytes:
		if p, ok := v.box.ref.(*[]byte); ok {
			return fmt.Sprintf("Bytes(%d bytes)", len(*p))
		}
		return "Bytes"
	default:
		return fmt.Sprintf("Value<%s>", v.box.name)
	}
}
