package carton

import "testing"

func TestVMapBuild(t *testing.T) {
	vm := NewVMap[string]().Insert("a", "1").Insert("b", "2")
	if vm.Len() != 2 {
		t.Fatalf("Len = %d, want 2", vm.Len())
	}
	if got, ok := vm.Get("a"); !ok || got != "1" {
		t.Errorf("Get(a) = (%q, %v)", got, ok)
	}
	if _, ok := vm.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
	if got := vm.GetOr("missing", "fallback"); got != "fallback" {
		t.Errorf("GetOr = %q, want fallback", got)
	}
	if got := vm.GetOr("b", "fallback"); got != "2" {
		t.Errorf("GetOr = %q, want 2", got)
	}
}

func TestVMapFromSharesMap(t *testing.T) {
	m := map[string]int64{"x": 1}
	vm := VMapFrom(m)
	vm.Insert("y", 2)
	if m["y"] != 2 {
		t.Error("Insert not visible through the wrapped map")
	}
	if len(vm.Into()) != 2 {
		t.Errorf("Into() has %d entries, want 2", len(vm.Into()))
	}
}

func TestVMapValueRoundTrip(t *testing.T) {
	r := DefaultRegistry()
	v := NewVMap[int64]().Insert("count", 41).Value()
	if v.Category() != CategoryMap {
		t.Fatalf("category = %s, want Map", v.Category())
	}
	out := mustDeserialize(t, r, mustSerialize(t, r, v))
	m, err := AsMapRef[string, int64](out)
	if err != nil {
		t.Fatal(err)
	}
	if m["count"] != 41 {
		t.Errorf("resolved map = %v", m)
	}
}
