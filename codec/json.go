package codec

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/enumjson/node"
)

// JSON writes documents as JSON text, keeping object member order.
// The zero value uses jsoniter's encoding/json compatible config.
type JSON struct {
	API jsoniter.API
}

var _ Codec = JSON{}

func (c JSON) api() jsoniter.API {
	if c.API == nil {
		return jsoniter.ConfigCompatibleWithStandardLibrary
	}
	return c.API
}

func (c JSON) Encode(n node.Node) ([]byte, error) { return node.Marshal(c.api(), n) }
func (c JSON) Decode(b []byte) (node.Node, error) { return node.ParseBytes(c.api(), b) }
