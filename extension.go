package enumjson

import (
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/unkn0wn-root/enumjson/enum"
	"github.com/unkn0wn-root/enumjson/node"
)

var valueType = reflect.TypeOf((*enum.Value)(nil)).Elem()

// enumExtension claims every concrete type in the enum.Value hierarchy for one
// strategy. Interface-typed values are left to jsoniter, which resolves their
// dynamic type and comes back here.
type enumExtension struct {
	jsoniter.DummyExtension
	strategy Strategy
	log      Logger
	hooks    Hooks
}

func (x *enumExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	t := typ.Type1()
	switch {
	case t.Kind() == reflect.Interface:
		return nil
	case t.Kind() == reflect.Pointer && t.Implements(valueType):
		return &enumEncoder{typ: t, ext: x}
	case t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(valueType):
		return &enumEncoder{typ: t, addr: true, ext: x}
	}
	return nil
}

type enumEncoder struct {
	typ  reflect.Type
	addr bool // typ is the struct itself; its pointer is the enum.Value
	ext  *enumExtension
}

func (e *enumEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	if e.addr {
		return false
	}
	return *(*unsafe.Pointer)(ptr) == nil
}

func (e *enumEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	rv := reflect.NewAt(e.typ, ptr)
	var v enum.Value
	if e.addr {
		v = rv.Interface().(enum.Value)
	} else {
		el := rv.Elem()
		if el.IsNil() {
			stream.WriteNil()
			return
		}
		v = el.Interface().(enum.Value)
	}

	n, err := e.ext.strategy.Serialize(v)
	if err != nil {
		err = &EncodeError{Type: e.typ.String(), Strategy: e.ext.strategy.Name(), Err: err}
		e.ext.log.Error("enum encode failed", Fields{"type": e.typ.String(), "err": err})
		e.ext.hooks.EncodeFailed(e.typ.String(), err)
		if stream.Error == nil {
			stream.Error = err
		}
		// Container encoders rewrap stream.Error as text; keep the typed error.
		if stream.Attachment == nil {
			stream.Attachment = err
		}
		return
	}
	node.Write(stream, n)
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
