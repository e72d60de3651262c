// Package carton implements a dynamically typed, type-preserving value
// container for passing arbitrary payloads across service and network
// boundaries.
//
// A Value pairs a ValueCategory with a type-erased, identity-preserving
// payload handle. Values reconstructed from wire bytes stay lazy: the
// payload is kept as an offset range over the received buffer and is
// decoded at most once, on first typed access. A Registry defines the
// wire format, dispatches per-type codecs, and re-emits still-lazy
// payloads verbatim so values can be forwarded without ever being
// materialized.
package carton
