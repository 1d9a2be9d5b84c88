package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/enumjson/node"
)

// Protobuf carries documents as google.protobuf.Value messages. Numbers travel
// as doubles, so integers beyond 2^53 lose precision.
type Protobuf struct {
	// Deterministic sorts object members on the wire.
	Deterministic bool
}

var _ Codec = Protobuf{}

func (c Protobuf) Encode(n node.Node) ([]byte, error) {
	v, err := structpb.NewValue(node.ToAny(n))
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: c.Deterministic}.Marshal(v)
}

func (c Protobuf) Decode(b []byte) (node.Node, error) {
	var v structpb.Value
	if err := proto.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return node.FromAny(v.AsInterface())
}
