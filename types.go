package carton

// ValueCategory tags a Value with its shape and doubles as the first
// byte of the wire encoding. The set is closed.
type ValueCategory byte

const (
	CategoryPrimitive ValueCategory = 0x01
	CategoryList      ValueCategory = 0x02
	CategoryMap       ValueCategory = 0x03
	CategoryStruct    ValueCategory = 0x04
	CategoryNull      ValueCategory = 0x05
	CategoryBytes     ValueCategory = 0x06
)

// String returns the category name.
func (c ValueCategory) String() string {
	switch c {
	case CategoryPrimitive:
		return "primitive"
	case CategoryList:
		return "list"
	case CategoryMap:
		return "map"
	case CategoryStruct:
		return "struct"
	case CategoryNull:
		return "null"
	case CategoryBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

func categoryFromMarker(b byte) (ValueCategory, bool) {
	switch ValueCategory(b) {
	case CategoryPrimitive, CategoryList, CategoryMap, CategoryStruct, CategoryNull, CategoryBytes:
		return ValueCategory(b), true
	default:
		return 0, false
	}
}
