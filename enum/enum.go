// Package enum models closed sets of named constants that carry their own data.
//
// A constant type is a struct that embeds Constant; each constant is a pointer to
// such a struct, registered once in a Set at package init:
//
//	type Planet struct {
//	    enum.Constant
//	    mass   float64
//	    radius float64
//	}
//
//	var Planets = enum.NewSet[*Planet]("Planet")
//
//	var (
//	    Mercury = Planets.Add("MERCURY", &Planet{mass: 3.303e+23, radius: 2.4397e6})
//	    Venus   = Planets.Add("VENUS", &Planet{mass: 4.869e+24, radius: 6.0518e6})
//	)
//
// The embedded Constant (ordinal, name) and any Set referenced from the struct are
// type-level bookkeeping; every other field is per-constant instance data.
package enum

import "fmt"

// Value is implemented by every enum constant. It is sealed: only types embedding
// Constant satisfy it. Constants are pointers to structs embedding Constant by
// value; embedding *Constant is tolerated but a nil one cannot be added to a Set.
type Value interface {
	Ordinal() int
	Name() string
	constant() *Constant
}

// Constant is the bookkeeping shared by all enum constants. Embed it by value.
type Constant struct {
	ordinal int
	name    string
	set     string
}

// Ordinal returns the zero-based declaration position of the constant.
func (c Constant) Ordinal() int { return c.ordinal }

// Name returns the declared constant name.
func (c Constant) Name() string { return c.name }

func (c Constant) String() string { return c.name }

// MarshalText renders the constant as its name. Engines that know nothing about
// enums fall back to this.
func (c Constant) MarshalText() ([]byte, error) {
	if c.name == "" {
		return nil, fmt.Errorf("enum: constant was never added to a set")
	}
	return []byte(c.name), nil
}

func (c *Constant) constant() *Constant { return c }

// Char is a single character. Go's rune is an alias of int32 and encodes as a
// number; Char encodes as one-character text wherever it appears.
type Char rune

func (c Char) String() string { return string(rune(c)) }

// MarshalText renders the character itself.
func (c Char) MarshalText() ([]byte, error) { return []byte(string(rune(c))), nil }
