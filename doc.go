// Package enumjson renders enum constants (see package enum) to JSON through a
// pluggable strategy bound to a json-iterator engine.
//
// Components:
//   - Strategy: turns one constant into a document. Rich emits one member per
//     instance field in declaration order; Minimal emits the ordinal.
//   - chain.Chain: first-match-wins field handlers used by Rich
//     (custom..., text, string, numeric, generic).
//   - Engine: a frozen jsoniter config with the strategy registered for every
//     enum type. Enums nested anywhere in a value are picked up.
//   - codec.Codec: renders documents as JSON, CBOR, Msgpack or protobuf.
//
// Usage:
//
//	e := enumjson.MustNew(enumjson.Options{})
//	b, _ := e.Marshal(Mercury) // {"mass":3.303e+23,"radius":2.4397e+06}
//
//	m := enumjson.MustNew(enumjson.Options{Strategy: enumjson.Minimal{}})
//	b, _ = m.Marshal(Venus) // 1
//
// An Engine is immutable and safe for concurrent use. Failed encodes return no
// output.
package enumjson
