// Package field discovers the per-constant data fields of enum values and reads
// them regardless of export status.
package field

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/unkn0wn-root/enumjson/enum"
)

const (
	tagKey    = "enum"
	tagShared = "shared"
)

var (
	// ErrNotEnum indicates the value does not implement enum.Value.
	ErrNotEnum = errors.New("field: value is not an enum constant")

	// ErrNilValue indicates a nil enum pointer.
	ErrNilValue = errors.New("field: nil enum value")

	// ErrTypeMismatch indicates a descriptor was used against an instance of another type.
	ErrTypeMismatch = errors.New("field: owner type mismatch")

	constantType = reflect.TypeOf(enum.Constant{})
	sharedType   = reflect.TypeOf((*enum.Shared)(nil)).Elem()
)

// Field identifies one instance-data slot of an enum struct type. It holds no value.
type Field struct {
	Name  string
	Type  reflect.Type
	Index int
	Owner reflect.Type
	Tag   reflect.StructTag
}

// Error is a configuration error raised while reading or converting a field.
// It is a programmer error, never a data error.
type Error struct {
	Owner    reflect.Type
	Constant string
	Field    string
	Err      error
}

func (e *Error) Error() string {
	owner := "<nil>"
	if e.Owner != nil {
		owner = e.Owner.String()
	}
	if e.Constant != "" {
		return fmt.Sprintf("field %s.%s of %s: %v", owner, e.Field, e.Constant, e.Err)
	}
	return fmt.Sprintf("field %s.%s: %v", owner, e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Instance returns the instance-data fields of v in declaration order. The embedded
// enum.Constant, fields tagged `enum:"shared"` and constant tables are type-level
// storage and are left out.
func Instance(v enum.Value) ([]Field, error) {
	if v == nil {
		return nil, ErrNilValue
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotEnum, t)
	}
	return Of(t), nil
}

// Of returns the instance-data fields of the struct type t.
func Of(t reflect.Type) []Field {
	out := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if isShared(sf) {
			continue
		}
		out = append(out, Field{
			Name:  sf.Name,
			Type:  sf.Type,
			Index: i,
			Owner: t,
			Tag:   sf.Tag,
		})
	}
	return out
}

func isShared(sf reflect.StructField) bool {
	if sf.Type == constantType || sf.Type == reflect.PointerTo(constantType) {
		return true
	}
	if sf.Tag.Get(tagKey) == tagShared {
		return true
	}
	return sf.Type.Implements(sharedType)
}

// Addressable resolves v to its addressable struct value so unexported fields
// can be read. Struct values are copied; pointers are dereferenced.
func Addressable(v enum.Value) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, ErrNilValue
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, ErrNilValue
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotEnum, rv.Type())
	}
	if !rv.CanAddr() {
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}
	return rv, nil
}

// Value reads f out of owner, which must be an addressable value of f.Owner.
func (f Field) Value(owner reflect.Value) (reflect.Value, error) {
	if !owner.IsValid() || owner.Type() != f.Owner {
		got := "invalid value"
		if owner.IsValid() {
			got = owner.Type().String()
		}
		return reflect.Value{}, &Error{
			Owner: f.Owner,
			Field: f.Name,
			Err:   fmt.Errorf("%w: got %s", ErrTypeMismatch, got),
		}
	}
	fv := owner.Field(f.Index)
	if fv.CanInterface() {
		return fv, nil
	}
	if !fv.CanAddr() {
		return reflect.Value{}, &Error{
			Owner: f.Owner,
			Field: f.Name,
			Err:   errors.New("owner is not addressable"),
		}
	}
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem(), nil
}
