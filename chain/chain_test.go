package chain

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/enumjson/enum"
	"github.com/unkn0wn-root/enumjson/node"
)

var plain = jsoniter.ConfigCompatibleWithStandardLibrary

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type label string

func (l label) MarshalText() ([]byte, error) { return []byte(strings.ToUpper(string(l))), nil }

func convert(t *testing.T, c *Chain, v any) (string, node.Node) {
	t.Helper()
	rv := reflect.ValueOf(v)
	h, err := c.First(rv.Type())
	require.NoError(t, err)
	n, err := h.Convert(rv)
	require.NoError(t, err)
	return h.Name, n
}

func TestBuiltinOrder(t *testing.T) {
	c := New(plain)
	var got []string
	for _, h := range c.Handlers() {
		got = append(got, h.Name)
	}
	assert.Equal(t, []string{NameText, NameString, NameNumeric, NameGeneric}, got)
}

func TestDispatchByDeclaredType(t *testing.T) {
	c := New(plain)
	s := "ptr"
	var nilInt *int
	cases := []struct {
		in      any
		handler string
		want    node.Node
	}{
		{enum.Char('x'), NameText, node.String("x")},
		{"bb", NameString, node.String("bb")},
		{&s, NameString, node.String("ptr")},
		{2, NameNumeric, node.Number("2")},
		{int8(-8), NameNumeric, node.Number("-8")},
		{uint64(math.MaxUint64), NameNumeric, node.Number("18446744073709551615")},
		{float32(0.1), NameNumeric, node.Number("0.1")},
		{1.5e300, NameNumeric, node.Number("1.5e+300")},
		{nilInt, NameNumeric, node.Null{}},
		{'r', NameNumeric, node.Number("114")}, // rune is int32
		{time.Second, NameNumeric, node.Number("1000000000")},
		{label("low"), NameGeneric, node.String("LOW")},
		{true, NameGeneric, node.Bool(true)},
		{[]int{1, 2}, NameGeneric, node.Array{node.Number("1"), node.Number("2")}},
	}
	for _, tc := range cases {
		name, n := convert(t, c, tc.in)
		assert.Equal(t, tc.handler, name, "%T", tc.in)
		assert.True(t, node.Equal(tc.want, n), "%T: got %#v", tc.in, n)
	}
}

func TestGenericNestedObject(t *testing.T) {
	c := New(plain)

	name, n := convert(t, c, point{X: 1, Y: 2})
	assert.Equal(t, NameGeneric, name)
	obj, ok := n.(*node.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, obj.Keys())

	_, n = convert(t, c, new(struct{}))
	assert.Equal(t, node.KindObject, n.Kind())
	assert.Equal(t, 0, n.(*node.Object).Len())
}

func TestGenericNilInterface(t *testing.T) {
	c := New(plain)
	holder := struct{ V any }{}
	rv := reflect.ValueOf(holder).Field(0)

	h, err := c.First(rv.Type())
	require.NoError(t, err)
	assert.Equal(t, NameGeneric, h.Name)

	n, err := h.Convert(rv)
	require.NoError(t, err)
	assert.Equal(t, node.KindNull, n.Kind())
}

func TestCatchAllAcceptsEveryType(t *testing.T) {
	c := New(plain)
	types := []reflect.Type{
		reflect.TypeOf((*any)(nil)).Elem(),
		reflect.TypeOf(map[string]int{}),
		reflect.TypeOf(make(chan int)),
		reflect.TypeOf(func() {}),
		reflect.TypeOf((*point)(nil)),
		reflect.TypeOf((**int)(nil)),
		reflect.TypeOf(complex64(0)),
	}
	for _, typ := range types {
		_, err := c.First(typ)
		assert.NoError(t, err, typ.String())
	}
}

func TestCustomHandlerShadowsBuiltins(t *testing.T) {
	upper := Handler{
		Name:    "upper",
		Accepts: func(t reflect.Type) bool { return t.Kind() == reflect.String },
		Convert: func(v reflect.Value) (node.Node, error) {
			return node.String(strings.ToUpper(v.String())), nil
		},
	}
	c := New(plain, upper)

	name, n := convert(t, c, "bb")
	assert.Equal(t, "upper", name)
	assert.Equal(t, node.String("BB"), n)

	// Types the custom handler rejects still reach the built-ins.
	name, _ = convert(t, c, 3)
	assert.Equal(t, NameNumeric, name)
	assert.Equal(t, NameGeneric, c.Handlers()[len(c.Handlers())-1].Name)
}

func TestTextShadowsNumeric(t *testing.T) {
	// enum.Char is an int32 kind; Numeric alone would accept it.
	assert.True(t, Numeric().Accepts(reflect.TypeOf(enum.Char('a'))))

	name, _ := convert(t, New(plain), enum.Char('a'))
	assert.Equal(t, NameText, name)
}

func TestNumericRejectsNaN(t *testing.T) {
	rv := reflect.ValueOf(math.NaN())
	_, err := Numeric().Convert(rv)
	assert.ErrorIs(t, err, node.ErrUnsupportedNumber)
}

func TestNewRejectsIncompleteHandler(t *testing.T) {
	assert.Panics(t, func() { New(plain, Handler{Name: "broken"}) })
}

func TestExhaustedError(t *testing.T) {
	c := &Chain{}
	_, err := c.First(reflect.TypeOf(0))
	var ee *ExhaustedError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, reflect.TypeOf(0), ee.Type)
}

func TestGenericRendersNestedCharsAsText(t *testing.T) {
	c := New(plain)

	name, n := convert(t, c, []enum.Char{'a', 'b'})
	assert.Equal(t, NameGeneric, name)
	assert.Equal(t, node.Array{node.String("a"), node.String("b")}, n)

	boxed := struct{ V any }{V: enum.Char('z')}
	rv := reflect.ValueOf(boxed).Field(0)
	h, err := c.First(rv.Type())
	require.NoError(t, err)
	assert.Equal(t, NameGeneric, h.Name)
	n, err = h.Convert(rv)
	require.NoError(t, err)
	assert.Equal(t, node.String("z"), n)
}
