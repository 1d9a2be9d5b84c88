package codec

import (
	"fmt"

	"github.com/unkn0wn-root/enumjson/internal/wire"
	"github.com/unkn0wn-root/enumjson/node"
)

// Format tags the payload of a framed document so a reader can pick the
// matching codec.
type Format byte

const (
	FormatJSON Format = iota + 1
	FormatCBOR
	FormatMsgpack
	FormatProtobuf
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	case FormatMsgpack:
		return "msgpack"
	case FormatProtobuf:
		return "protobuf"
	default:
		return fmt.Sprintf("format(%d)", byte(f))
	}
}

// Framed wraps Inner's output in a small versioned header carrying Format.
// Decode rejects frames written with a different format.
type Framed struct {
	Inner  Codec
	Format Format
}

var _ Codec = Framed{}

func (c Framed) Encode(n node.Node) ([]byte, error) {
	b, err := c.Inner.Encode(n)
	if err != nil {
		return nil, err
	}
	return wire.EncodeSingle(byte(c.Format), b), nil
}

func (c Framed) Decode(b []byte) (node.Node, error) {
	format, payload, err := wire.DecodeSingle(b)
	if err != nil {
		return nil, err
	}
	if Format(format) != c.Format {
		return nil, fmt.Errorf("codec: frame format %s, want %s", Format(format), c.Format)
	}
	return c.Inner.Decode(payload)
}

// Entry is one named document of a bundle, usually one enum constant.
type Entry struct {
	Name string
	Doc  node.Node
}

// EncodeBundle renders entries with c.Inner into one frame, keeping their order.
func (c Framed) EncodeBundle(entries []Entry) ([]byte, error) {
	items := make([]wire.Item, 0, len(entries))
	for _, e := range entries {
		b, err := c.Inner.Encode(e.Doc)
		if err != nil {
			return nil, fmt.Errorf("codec: bundle entry %q: %w", e.Name, err)
		}
		items = append(items, wire.Item{Name: e.Name, Payload: b})
	}
	return wire.EncodeBundle(byte(c.Format), items)
}

// DecodeBundle is the inverse of EncodeBundle.
func (c Framed) DecodeBundle(b []byte) ([]Entry, error) {
	format, items, err := wire.DecodeBundle(b)
	if err != nil {
		return nil, err
	}
	if Format(format) != c.Format {
		return nil, fmt.Errorf("codec: bundle format %s, want %s", Format(format), c.Format)
	}
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		n, err := c.Inner.Decode(it.Payload)
		if err != nil {
			return nil, fmt.Errorf("codec: bundle entry %q: %w", it.Name, err)
		}
		out = append(out, Entry{Name: it.Name, Doc: n})
	}
	return out, nil
}
