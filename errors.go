package enumjson

import (
	"errors"

	"github.com/unkn0wn-root/enumjson/chain"
	"github.com/unkn0wn-root/enumjson/field"
	"github.com/unkn0wn-root/enumjson/node"
)

var (
	ErrNilValue          = field.ErrNilValue
	ErrNotEnum           = field.ErrNotEnum
	ErrTypeMismatch      = field.ErrTypeMismatch
	ErrUnsupportedNumber = node.ErrUnsupportedNumber

	// ErrHandlersWithStrategy is returned by New when custom handlers are given
	// together with a caller-supplied Strategy; handlers only feed the default
	// rich chain.
	ErrHandlersWithStrategy = errors.New("enumjson: Handlers require the default rich strategy")
)

// FieldError is the configuration error raised when a field cannot be read or
// converted. It names the owning type, the constant and the field.
type FieldError = field.Error

// ExhaustedError means no handler accepted a field type.
type ExhaustedError = chain.ExhaustedError

// EncodeError wraps a strategy failure with the Go type being encoded.
type EncodeError struct {
	Type     string
	Strategy string
	Err      error
}

func (e *EncodeError) Error() string {
	return "enumjson: " + e.Strategy + " encode of " + e.Type + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }
