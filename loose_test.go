package carton

import "testing"

func TestToLoose(t *testing.T) {
	type point struct {
		X int     `json:"x"`
		Y float64 `json:"y"`
	}
	loose := ToLoose(point{X: 1, Y: 2.5})
	m, ok := loose.(map[string]any)
	if !ok {
		t.Fatalf("ToLoose = %T, want map[string]any", loose)
	}
	if m["x"] != float64(1) || m["y"] != 2.5 {
		t.Errorf("loose map = %v", m)
	}
	if ToLoose(make(chan int)) != nil {
		t.Error("unmarshalable input did not convert to nil")
	}
}

func TestLooseAs(t *testing.T) {
	if got := LooseAs[int64](float64(7), 0); got != 7 {
		t.Errorf("LooseAs[int64] = %d, want 7", got)
	}
	if got := LooseAs[string]("hi", "def"); got != "hi" {
		t.Errorf("LooseAs[string] = %q, want hi", got)
	}
	if got := LooseAs[int64]("not a number", -1); got != -1 {
		t.Errorf("failed conversion = %d, want the default", got)
	}
}

func TestExtractLoose(t *testing.T) {
	m := map[string]any{"n": float64(3), "s": "v"}
	if got := ExtractLoose[int64](m, "n", 0); got != 3 {
		t.Errorf("ExtractLoose(n) = %d, want 3", got)
	}
	if got := ExtractLoose[string](m, "s", ""); got != "v" {
		t.Errorf("ExtractLoose(s) = %q, want v", got)
	}
	if got := ExtractLoose[string](m, "missing", "def"); got != "def" {
		t.Errorf("missing key = %q, want the default", got)
	}
	if got := ExtractLoose[string]("not a map", "k", "def"); got != "def" {
		t.Errorf("non-map input = %q, want the default", got)
	}
}
