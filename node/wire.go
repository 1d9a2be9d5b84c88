package node

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// Write renders n onto stream. A nil n is written as null.
func Write(stream *jsoniter.Stream, n Node) {
	switch v := n.(type) {
	case nil, Null:
		stream.WriteNil()
	case Bool:
		stream.WriteBool(bool(v))
	case Number:
		stream.WriteRaw(string(v))
	case String:
		// WriteVal honors the stream config's EscapeHTML.
		stream.WriteVal(string(v))
	case Array:
		if len(v) == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, el := range v {
			if i > 0 {
				stream.WriteMore()
			}
			Write(stream, el)
		}
		stream.WriteArrayEnd()
	case *Object:
		if v.Len() == 0 {
			stream.WriteEmptyObject()
			return
		}
		stream.WriteObjectStart()
		for i, k := range v.keys {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k)
			Write(stream, v.vals[k])
		}
		stream.WriteObjectEnd()
	default:
		stream.Error = fmt.Errorf("node: unknown node type %T", n)
	}
}

// Marshal renders n as compact JSON using api's stream settings.
func Marshal(api jsoniter.API, n Node) ([]byte, error) {
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	Write(stream, n)
	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// ErrTruncated reports a document that ends before its last value is complete.
var ErrTruncated = errors.New("node: unexpected end of JSON input")

// Parse reads one JSON value from iter. Object members keep their wire order and
// numbers keep their literal text. Errors are reported through iter.Error.
func Parse(iter *jsoniter.Iterator) Node {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		truncatedAtEOF(iter)
		return Null{}
	case jsoniter.BoolValue:
		b := iter.ReadBool()
		truncatedAtEOF(iter)
		return Bool(b)
	case jsoniter.NumberValue:
		// A number may legitimately end at EOF; ParseBytes accepts that.
		lit := string(iter.ReadNumber())
		if _, err := strconv.ParseFloat(lit, 64); err != nil && !errors.Is(err, strconv.ErrRange) {
			if iter.Error == nil || errors.Is(iter.Error, io.EOF) {
				iter.Error = fmt.Errorf("node: malformed number %q", lit)
			}
		}
		return Number(lit)
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.ArrayValue:
		arr := Array{}
		done := iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			arr = append(arr, Parse(it))
			return it.Error == nil
		})
		if !done {
			truncated(iter)
		}
		return arr
	case jsoniter.ObjectValue:
		obj := NewObject(4)
		done := iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
			obj.Set(key, Parse(it))
			return it.Error == nil
		})
		if !done {
			truncated(iter)
		}
		return obj
	default:
		if iter.Error == nil {
			iter.ReportError("node.Parse", "unexpected token")
		} else {
			truncated(iter)
		}
		return Null{}
	}
}

// truncated turns a missing or EOF error into ErrTruncated. Real syntax errors
// are kept.
func truncated(iter *jsoniter.Iterator) {
	if iter.Error == nil || errors.Is(iter.Error, io.EOF) {
		iter.Error = ErrTruncated
	}
}

// truncatedAtEOF flags literals (null, true, false) cut short by the input.
func truncatedAtEOF(iter *jsoniter.Iterator) {
	if errors.Is(iter.Error, io.EOF) {
		iter.Error = ErrTruncated
	}
}

// ParseBytes parses a complete JSON document. Truncated input and trailing data
// are errors.
func ParseBytes(api jsoniter.API, data []byte) (Node, error) {
	iter := api.BorrowIterator(data)
	defer api.ReturnIterator(iter)

	n := Parse(iter)
	// io.EOF here only follows a top-level number that ends the input.
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return nil, fmt.Errorf("node: parse: %w", iter.Error)
	}
	if iter.Error == nil {
		// WhatIsNext sets io.EOF when nothing but whitespace remains.
		iter.WhatIsNext()
		if iter.Error == nil {
			return nil, fmt.Errorf("node: parse: trailing data after document")
		}
	}
	return n, nil
}
