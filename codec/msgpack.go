package codec

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/unkn0wn-root/enumjson/node"
)

// Msgpack is a Codec that serializes documents using vmihailenco/msgpack/v5.
// The zero value is ready to use. Maps are written member by member, so object
// order survives a round trip.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Encode(n node.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeNode(enc, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Msgpack) Decode(b []byte) (node.Node, error) {
	r := bytes.NewReader(b)
	n, err := decodeNode(msgpack.NewDecoder(r))
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("msgpack: %d trailing bytes", r.Len())
	}
	return n, nil
}

func encodeNode(enc *msgpack.Encoder, n node.Node) error {
	switch v := n.(type) {
	case nil, node.Null:
		return enc.EncodeNil()
	case node.Bool:
		return enc.EncodeBool(bool(v))
	case node.Number:
		if i, err := v.Int64(); err == nil {
			return enc.EncodeInt(i)
		}
		if u, err := v.Uint64(); err == nil {
			return enc.EncodeUint(u)
		}
		f, err := v.Float64()
		if err != nil {
			return fmt.Errorf("msgpack: bad number %q: %w", string(v), err)
		}
		return enc.EncodeFloat64(f)
	case node.String:
		return enc.EncodeString(string(v))
	case node.Array:
		if err := enc.EncodeArrayLen(len(v)); err != nil {
			return err
		}
		for _, el := range v {
			if err := encodeNode(enc, el); err != nil {
				return err
			}
		}
		return nil
	case *node.Object:
		if err := enc.EncodeMapLen(v.Len()); err != nil {
			return err
		}
		var err error
		v.Range(func(k string, el node.Node) bool {
			if err = enc.EncodeString(k); err != nil {
				return false
			}
			err = encodeNode(enc, el)
			return err == nil
		})
		return err
	}
	return fmt.Errorf("msgpack: unknown node %T", n)
}

func decodeNode(dec *msgpack.Decoder) (node.Node, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}
	switch {
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		obj := node.NewObject(n)
		for i := 0; i < n; i++ {
			k, err := dec.DecodeString()
			if err != nil {
				return nil, err
			}
			el, err := decodeNode(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(k, el)
		}
		return obj, nil
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		arr := make(node.Array, 0, n)
		for i := 0; i < n; i++ {
			el, err := decodeNode(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, el)
		}
		return arr, nil
	}
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, err
	}
	return node.FromAny(v)
}
