package chain

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/enumjson/enum"
	"github.com/unkn0wn-root/enumjson/node"
)

const (
	NameText    = "text"
	NameString  = "string"
	NameNumeric = "numeric"
	NameGeneric = "generic"
)

var (
	charType          = reflect.TypeOf(enum.Char(0))
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// Text handles enum.Char fields, written as one-character strings.
func Text() Handler {
	return Handler{
		Name:    NameText,
		Accepts: func(t reflect.Type) bool { return base(t) == charType },
		Convert: nilSafe(func(v reflect.Value) (node.Node, error) {
			return node.String(string(rune(v.Int()))), nil
		}),
	}
}

// String handles string kinds, written verbatim.
func String() Handler {
	return Handler{
		Name: NameString,
		Accepts: func(t reflect.Type) bool {
			b := base(t)
			return b.Kind() == reflect.String && !marshals(b)
		},
		Convert: nilSafe(func(v reflect.Value) (node.Node, error) {
			return node.String(v.String()), nil
		}),
	}
}

// Numeric handles integer and floating-point kinds. The literal is exact for the
// source type's range.
func Numeric() Handler {
	return Handler{
		Name: NameNumeric,
		Accepts: func(t reflect.Type) bool {
			b := base(t)
			return isNumeric(b.Kind()) && !marshals(b)
		},
		Convert: nilSafe(func(v reflect.Value) (node.Node, error) {
			switch v.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				return node.Int(v.Int()), nil
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
				return node.Uint(v.Uint()), nil
			case reflect.Float32:
				return node.Float(v.Float(), 32)
			case reflect.Float64:
				return node.Float(v.Float(), 64)
			}
			return nil, fmt.Errorf("chain: %s is not numeric", v.Type())
		}),
	}
}

// Generic accepts every type. It marshals the runtime value with api and parses
// the result back into a node, so nested objects, collections and nil follow api's
// own rules.
func Generic(api jsoniter.API) Handler {
	return Handler{
		Name:    NameGeneric,
		Accepts: func(reflect.Type) bool { return true },
		Convert: func(v reflect.Value) (node.Node, error) {
			if !v.IsValid() {
				return node.Null{}, nil
			}
			data, err := api.Marshal(v.Interface())
			if err != nil {
				return nil, err
			}
			return node.ParseBytes(api, data)
		},
	}
}

// base strips one level of pointer so *T fields share T's handler.
func base(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

func nilSafe(fn func(reflect.Value) (node.Node, error)) func(reflect.Value) (node.Node, error) {
	return func(v reflect.Value) (node.Node, error) {
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return node.Null{}, nil
			}
			v = v.Elem()
		}
		return fn(v)
	}
}

func marshals(t reflect.Type) bool {
	if t == charType {
		return false
	}
	return t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType) ||
		reflect.PointerTo(t).Implements(jsonMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
