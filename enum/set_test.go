package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suit struct {
	Constant
	symbol Char
}

func newSuits() (*Set[*suit], *suit, *suit) {
	s := NewSet[*suit]("suit")
	hearts := s.Add("HEARTS", &suit{symbol: '♥'})
	spades := s.Add("SPADES", &suit{symbol: '♠'})
	return s, hearts, spades
}

func TestSetOrdinalsAndNames(t *testing.T) {
	s, hearts, spades := newSuits()

	assert.Equal(t, "suit", s.Name())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 0, hearts.Ordinal())
	assert.Equal(t, 1, spades.Ordinal())
	assert.Equal(t, "SPADES", spades.Name())
	assert.Equal(t, "HEARTS", hearts.String())
	assert.Equal(t, "♠", spades.symbol.String())
}

func TestSetLookups(t *testing.T) {
	s, hearts, spades := newSuits()

	v, ok := s.ByName("SPADES")
	require.True(t, ok)
	assert.Same(t, spades, v)
	_, ok = s.ByName("CLUBS")
	assert.False(t, ok)

	v, ok = s.ByOrdinal(0)
	require.True(t, ok)
	assert.Same(t, hearts, v)
	for _, i := range []int{-1, 2} {
		v, ok = s.ByOrdinal(i)
		assert.False(t, ok)
		assert.Nil(t, v)
	}
}

func TestSetValuesIsACopy(t *testing.T) {
	s, hearts, _ := newSuits()
	vs := s.Values()
	vs[0] = nil
	again := s.Values()
	assert.Same(t, hearts, again[0])
}

func TestSetAddPanics(t *testing.T) {
	s, hearts, _ := newSuits()
	assert.Panics(t, func() { s.Add("HEARTS", &suit{}) })

	other := NewSet[*suit]("other")
	assert.Panics(t, func() { other.Add("H", hearts) })
}

func TestConstantMarshalText(t *testing.T) {
	_, hearts, _ := newSuits()
	b, err := hearts.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "HEARTS", string(b))

	_, err = (&suit{}).MarshalText()
	assert.Error(t, err)
}
