package carton

import (
	"errors"
	"testing"
)

// assertKind fails unless err is a *Error of the given kind.
func assertKind(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if ce.Kind != kind {
		t.Fatalf("expected %s, got %s: %v", kind, ce.Kind, ce)
	}
	return ce
}

func TestErrorMessage(t *testing.T) {
	err := typeMismatch("int32", "string")
	want := "carton: type mismatch: expected int32, got string"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := decodeErr("int32", inner)
	if !errors.Is(err, inner) {
		t.Error("decode error does not unwrap to its cause")
	}
}

func TestCategoryMismatchNamesBothCategories(t *testing.T) {
	err := categoryMismatch(CategoryList, CategoryMap)
	if err.Expected != "list" || err.Actual != "map" {
		t.Errorf("got expected=%q actual=%q", err.Expected, err.Actual)
	}
}
