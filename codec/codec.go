// Package codec renders JSON documents (node.Node) into wire formats and reads
// them back. Decoding yields documents, never enum constants.
package codec

import "github.com/unkn0wn-root/enumjson/node"

// Codec encodes/decodes documents to []byte.
type Codec interface {
	Encode(node.Node) ([]byte, error)
	Decode([]byte) (node.Node, error)
}
