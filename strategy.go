package enumjson

import (
	"github.com/unkn0wn-root/enumjson/chain"
	"github.com/unkn0wn-root/enumjson/enum"
	"github.com/unkn0wn-root/enumjson/field"
	"github.com/unkn0wn-root/enumjson/node"
)

const (
	StrategyRich    = "rich"
	StrategyMinimal = "minimal"
)

// Strategy turns one enum constant into a JSON node. Implementations are
// stateless and safe for concurrent use; an engine binds exactly one for its
// lifetime.
type Strategy interface {
	Name() string
	Serialize(v enum.Value) (node.Node, error)
}

// Rich expands a constant into an object with one member per instance field,
// in declaration order.
type Rich struct {
	chain *chain.Chain
	hooks Hooks
}

var _ Strategy = (*Rich)(nil)

// NewRich returns a rich strategy converting fields with c.
func NewRich(c *chain.Chain) *Rich {
	return &Rich{chain: c, hooks: NopHooks{}}
}

// WithHooks returns a copy of r reporting to h.
func (r *Rich) WithHooks(h Hooks) *Rich {
	cp := *r
	cp.hooks = coalesce[Hooks](h, NopHooks{})
	return &cp
}

func (r *Rich) Name() string { return StrategyRich }

func (r *Rich) Serialize(v enum.Value) (node.Node, error) {
	owner, err := field.Addressable(v)
	if err != nil {
		return nil, err
	}
	fields := field.Of(owner.Type())
	constant := v.Name()

	obj := node.NewObject(len(fields))
	for _, f := range fields {
		fv, err := f.Value(owner)
		if err != nil {
			return nil, withConstant(err, constant)
		}
		h, err := r.chain.First(f.Type)
		if err != nil {
			return nil, &field.Error{Owner: f.Owner, Constant: constant, Field: f.Name, Err: err}
		}
		if h.Name == chain.NameGeneric {
			r.hooks.FallbackUsed(f.Owner.String(), f.Name)
		}
		n, err := h.Convert(fv)
		if err != nil {
			return nil, &field.Error{Owner: f.Owner, Constant: constant, Field: f.Name, Err: err}
		}
		obj.Set(f.Name, n)
	}
	return obj, nil
}

func withConstant(err error, constant string) error {
	if fe, ok := err.(*field.Error); ok && fe.Constant == "" {
		cp := *fe
		cp.Constant = constant
		return &cp
	}
	return err
}

// Minimal encodes a constant as its zero-based ordinal and ignores its fields.
type Minimal struct{}

var _ Strategy = Minimal{}

func (Minimal) Name() string { return StrategyMinimal }

func (Minimal) Serialize(v enum.Value) (node.Node, error) {
	if v == nil {
		return nil, ErrNilValue
	}
	if _, err := field.Addressable(v); err != nil {
		return nil, err
	}
	return node.Int(int64(v.Ordinal())), nil
}
