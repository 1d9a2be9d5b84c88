// Package chain converts enum instance fields into JSON nodes. A Chain is an
// ordered list of handlers tried first-match-wins by the field's declared type;
// its last handler accepts every type.
package chain

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/enumjson/node"
)

// Handler pairs a predicate over a declared field type with a conversion of a
// field value of that type. Handlers must be stateless.
type Handler struct {
	Name    string
	Accepts func(t reflect.Type) bool
	Convert func(v reflect.Value) (node.Node, error)
}

// ExhaustedError means no handler accepted a type. Chains built by New always end
// with a catch-all, so seeing this is a bug.
type ExhaustedError struct {
	Type reflect.Type
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("chain: no handler accepts %v", e.Type)
}

// Chain is immutable once built and safe for concurrent use.
type Chain struct {
	handlers []Handler
}

// New returns the chain [custom..., Text, String, Numeric, Generic(fallback)].
// Custom handlers shadow the built-ins for the types they accept. fallback is the
// general-purpose engine used for every value no earlier handler claims.
func New(fallback jsoniter.API, custom ...Handler) *Chain {
	hs := make([]Handler, 0, len(custom)+4)
	for _, h := range custom {
		if h.Accepts == nil || h.Convert == nil {
			panic(fmt.Sprintf("chain: handler %q needs Accepts and Convert", h.Name))
		}
		hs = append(hs, h)
	}
	hs = append(hs, Text(), String(), Numeric(), Generic(fallback))
	return &Chain{handlers: hs}
}

// First returns the first handler accepting t.
func (c *Chain) First(t reflect.Type) (Handler, error) {
	for _, h := range c.handlers {
		if h.Accepts(t) {
			return h, nil
		}
	}
	return Handler{}, &ExhaustedError{Type: t}
}

// Handlers returns the handlers in priority order.
func (c *Chain) Handlers() []Handler {
	out := make([]Handler, len(c.handlers))
	copy(out, c.handlers)
	return out
}
