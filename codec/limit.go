package codec

import (
	"fmt"

	"github.com/unkn0wn-root/enumjson/node"
)

// Limit wraps another codec to enforce a maximum allowed payload size
// at Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
type Limit struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload for Decode.
	MaxDecode int
}

var _ Codec = Limit{}

func (c Limit) Encode(n node.Node) ([]byte, error) { return c.Inner.Encode(n) }
func (c Limit) Decode(b []byte) (node.Node, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		return nil, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
