package carton

import (
	"reflect"
	"strings"
)

func typeFor[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

// typeNameOf derives the full, unambiguous name recorded for a payload
// type. Named types carry their package path; containers are spelled
// structurally so both sides of the wire agree without sharing code.
func typeNameOf(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeNameOf(t.Elem())
	case reflect.Slice:
		return "[]" + typeNameOf(t.Elem())
	case reflect.Map:
		return "map[" + typeNameOf(t.Key()) + "]" + typeNameOf(t.Elem())
	default:
		if t.Name() != "" {
			if pp := t.PkgPath(); pp != "" {
				return pp + "." + t.Name()
			}
			return t.Name()
		}
		return t.String()
	}
}

// shortTypeName strips the package path from a plain named type.
// Structural names pass through unchanged.
func shortTypeName(name string) string {
	if strings.ContainsAny(name, "[]*") {
		return name
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// compatibleTypeNames reports whether two recorded names refer to the
// same logical type: exact match, full versus short spellings of one
// named type, or element-wise compatible container names.
func compatibleTypeNames(expected, actual string) bool {
	if expected == actual {
		return true
	}
	if strings.HasPrefix(expected, "[]") && strings.HasPrefix(actual, "[]") {
		return compatibleTypeNames(expected[2:], actual[2:])
	}
	ek, ev, eok := splitMapName(expected)
	ak, av, aok := splitMapName(actual)
	if eok || aok {
		return eok && aok && compatibleTypeNames(ek, ak) && compatibleTypeNames(ev, av)
	}
	return shortTypeName(expected) == actual || expected == shortTypeName(actual)
}

func splitMapName(name string) (key, val string, ok bool) {
	if !strings.HasPrefix(name, "map[") {
		return "", "", false
	}
	depth := 0
	for i := 4; i < len(name); i++ {
		switch name[i] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return name[4:i], name[i+1:], true
			}
			depth--
		}
	}
	return "", "", false
}
