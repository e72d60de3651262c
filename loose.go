package carton

import "encoding/json"

// Loose conversion helpers for call sites that still traffic in
// map[string]any payloads. They go through JSON so any JSON-shaped
// struct converts without per-type registration; they are not part of
// the wire format.

// ToLoose converts v to its loose representation: maps, slices,
// strings, float64 numbers, and bools. It returns nil when v does not
// survive a JSON round trip.
func ToLoose(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// LooseAs converts a loose value into a concrete T, returning def when
// the conversion fails.
func LooseAs[T any](v any, def T) T {
	raw, err := json.Marshal(v)
	if err != nil {
		return def
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return def
	}
	return *out
}

// ExtractLoose looks key up in a loose map and converts the entry to
// T, returning def when the map or the entry does not cooperate.
func ExtractLoose[T any](m any, key string, def T) T {
	mm, ok := m.(map[string]any)
	if !ok {
		return def
	}
	v, ok := mm[key]
	if !ok {
		return def
	}
	return LooseAs(v, def)
}
