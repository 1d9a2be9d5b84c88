// Package node is the in-memory JSON document model: a tagged union over null,
// boolean, number, string, array and object. Objects keep insertion order so
// rendering is reproducible.
package node

import (
	"errors"
	"math"
	"strconv"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ErrUnsupportedNumber is returned for values JSON cannot represent (NaN, ±Inf).
var ErrUnsupportedNumber = errors.New("node: unsupported number")

// Node is one JSON value. The concrete types are Null, Bool, Number, String,
// Array and *Object.
type Node interface {
	Kind() Kind
	isNode()
}

type (
	Null   struct{}
	Bool   bool
	String string
	Array  []Node

	// Number holds the literal text of a JSON number, so no precision is lost
	// between the source value and the wire.
	Number string
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) isNode()   {}
func (Bool) isNode()   {}
func (Number) isNode() {}
func (String) isNode() {}
func (Array) isNode()  {}

// Int returns the number node for v.
func Int(v int64) Number { return Number(strconv.FormatInt(v, 10)) }

// Uint returns the number node for v.
func Uint(v uint64) Number { return Number(strconv.FormatUint(v, 10)) }

// Float returns the shortest literal that parses back to v at the given bit size
// (32 or 64).
func Float(v float64, bits int) (Number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrUnsupportedNumber
	}
	return Number(strconv.FormatFloat(v, 'g', -1, bits)), nil
}

// Int64 parses the literal as a signed integer.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

// Uint64 parses the literal as an unsigned integer.
func (n Number) Uint64() (uint64, error) { return strconv.ParseUint(string(n), 10, 64) }

// Float64 parses the literal as a float.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// Object is an insertion-ordered mapping from member name to Node.
// The zero value is not usable; construct with NewObject.
type Object struct {
	keys []string
	vals map[string]Node
}

// NewObject returns an empty object with room for n members.
func NewObject(n int) *Object {
	return &Object{keys: make([]string, 0, n), vals: make(map[string]Node, n)}
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) isNode()    {}

// Set adds or replaces a member. Replacing keeps the member's original position.
// A nil v is stored as Null.
func (o *Object) Set(key string, v Node) {
	if v == nil {
		v = Null{}
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the member stored under key.
func (o *Object) Get(key string) (Node, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns member names in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Range calls fn for each member in order until fn returns false.
func (o *Object) Range(fn func(key string, v Node) bool) {
	for _, k := range o.keys {
		if !fn(k, o.vals[k]) {
			return
		}
	}
}

// Equal reports whether a and b are the same document. Object members are
// compared by name, not position; numbers by literal text.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Number:
		return av == b.(Number)
	case String:
		return av == b.(String)
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.keys {
			other, ok := bv.vals[k]
			if !ok || !Equal(av.vals[k], other) {
				return false
			}
		}
		return true
	}
	return false
}
