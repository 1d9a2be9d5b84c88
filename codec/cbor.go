package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/enumjson/node"
)

// CBOR is a Codec that serializes documents using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// CBOR maps carry no member order. Use deterministic=true for canonical encoding
// (RFC 8949 Core Deterministic) when you need byte-for-byte stable outputs;
// otherwise PreferredUnsortedEncOptions are used.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Handy for package-level variables in tests/examples.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(n node.Node) ([]byte, error) {
	return c.enc.Marshal(node.ToAny(n))
}

func (c CBOR) Decode(b []byte) (node.Node, error) {
	var v any
	if err := c.dec.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return node.FromAny(v)
}
