package enum

import "fmt"

// Set is the ordered constant table of one enumeration. Constants are added at
// init time; after that a Set is read-only and safe for concurrent use.
type Set[T Value] struct {
	name   string
	values []T
	byName map[string]T
}

// NewSet returns an empty constant table for the enumeration called name.
func NewSet[T Value](name string) *Set[T] {
	return &Set[T]{name: name, byName: make(map[string]T)}
}

// Add registers v as the next constant and assigns it name and ordinal.
// Registering a duplicate name or a constant that already belongs to a set panics.
func (s *Set[T]) Add(name string, v T) T {
	c := v.constant()
	if c == nil {
		panic(fmt.Sprintf("enum: %s has no Constant to register", name))
	}
	if c.set != "" {
		panic(fmt.Sprintf("enum: %s already registered in %s", c.name, c.set))
	}
	if _, dup := s.byName[name]; dup {
		panic(fmt.Sprintf("enum: duplicate constant %s in %s", name, s.name))
	}
	c.ordinal = len(s.values)
	c.name = name
	c.set = s.name
	s.values = append(s.values, v)
	s.byName[name] = v
	return v
}

// Name returns the enumeration name.
func (s *Set[T]) Name() string { return s.name }

// Len returns the number of constants.
func (s *Set[T]) Len() int { return len(s.values) }

// Values returns the constants in declaration order. The slice is a copy.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// ByName looks up a constant by its declared name.
func (s *Set[T]) ByName(name string) (T, bool) {
	v, ok := s.byName[name]
	return v, ok
}

// ByOrdinal looks up a constant by its declaration position.
func (s *Set[T]) ByOrdinal(i int) (T, bool) {
	if i < 0 || i >= len(s.values) {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

func (s *Set[T]) sharedTable() {}

// Shared is implemented by constant tables. Struct fields of such a type are
// type-level storage, never instance data.
type Shared interface {
	sharedTable()
}

var _ Shared = (*Set[*Constant])(nil)
