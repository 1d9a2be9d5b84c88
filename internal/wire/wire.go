package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version    byte = 1
	kindSingle byte = 1
	kindBundle byte = 2
)

var (
	ErrCorrupt = errors.New("enumjson: corrupt frame")
	magic4     = [...]byte{'E', 'N', 'J', 'S'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Single: magic(4) | ver(1) | kind(1=single) | format(1) | vlen(u32 be) | payload(vlen)
func EncodeSingle(format byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 1 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindSingle)
	buf.WriteByte(format)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

func DecodeSingle(b []byte) (format byte, payload []byte, err error) {
	const hdr = 4 + 1 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindSingle {
		return 0, nil, ErrCorrupt
	}

	format = b[6]
	off := 7

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // exact: no trailing bytes
		return 0, nil, ErrCorrupt
	}

	return format, b[off : off+vlen], nil
}

// Bundle:
//
//	magic(4) | ver(1) | kind(2=bundle) | format(1) | n(u32 be)
//	nameLen(u16 be) | name(nameLen) | vlen(u32 be) | payload(vlen) * n
type Item struct {
	Name    string
	Payload []byte
}

func EncodeBundle(format byte, items []Item) ([]byte, error) {
	total := 4 + 1 + 1 + 1 + 4
	for _, it := range items {
		if l := len(it.Name); l == 0 || l > 0xFFFF {
			return nil, errors.New("enumjson: invalid name length in bundle")
		}
		total += 2 + len(it.Name) + 4 + len(it.Payload)
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindBundle)
	buf.WriteByte(format)

	var u4 [4]byte
	var u2 [2]byte

	binary.BigEndian.PutUint32(u4[:], uint32(len(items)))
	buf.Write(u4[:])

	for _, it := range items {
		binary.BigEndian.PutUint16(u2[:], uint16(len(it.Name)))
		buf.Write(u2[:])
		buf.WriteString(it.Name)

		binary.BigEndian.PutUint32(u4[:], uint32(len(it.Payload)))
		buf.Write(u4[:])
		buf.Write(it.Payload)
	}

	return buf.Bytes(), nil
}

func DecodeBundle(b []byte) (format byte, items []Item, err error) {
	const hdr = 4 + 1 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindBundle {
		return 0, nil, ErrCorrupt
	}

	format = b[6]
	off := 7

	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	// every item needs at least 2+1+4 bytes; reject counts the payload cannot hold
	if n < 0 || n > (len(b)-off)/7 {
		return 0, nil, ErrCorrupt
	}

	items = make([]Item, 0, n)
	for i := 0; i < n; i++ {
		// nameLen
		if off+2 > len(b) {
			return 0, nil, ErrCorrupt
		}
		nlen := int(binary.BigEndian.Uint16(b[off : off+2]))
		off += 2
		if nlen <= 0 || nlen > len(b)-off {
			return 0, nil, ErrCorrupt
		}

		name := string(b[off : off+nlen])
		off += nlen

		// vlen
		if off+4 > len(b) {
			return 0, nil, ErrCorrupt
		}
		vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
		off += 4
		if vlen < 0 || vlen > len(b)-off {
			return 0, nil, ErrCorrupt
		}

		items = append(items, Item{Name: name, Payload: b[off : off+vlen]})
		off += vlen
	}
	if off != len(b) {
		return 0, nil, ErrCorrupt
	}

	return format, items, nil
}
