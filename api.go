package enumjson

import (
	"io"
	"reflect"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/enumjson/chain"
	"github.com/unkn0wn-root/enumjson/codec"
	"github.com/unkn0wn-root/enumjson/enum"
	"github.com/unkn0wn-root/enumjson/node"
)

const defaultIndentStep = 2

// Options tune the engine. The zero value gives a rich-strategy engine with
// the built-in handler chain.
type Options struct {
	// Strategy used for every enum value. nil => rich over the built-in chain
	// (plus Handlers). Use Minimal{} for ordinal-only output.
	Strategy Strategy

	// Handlers are tried before the built-in ones by the default rich strategy.
	Handlers []chain.Handler

	EscapeHTML  bool
	SortMapKeys bool // ordinary maps only; enum objects keep declaration order
	IndentStep  int  // MarshalIndent; 0 => 2

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

// Engine is a configured JSON engine with one enum strategy bound to it.
// It is immutable and safe for concurrent use.
type Engine struct {
	api      jsoniter.API
	indented jsoniter.API
	strategy Strategy
}

// New builds the engine: it freezes a jsoniter config and registers the
// strategy for every type implementing enum.Value.
func New(opts Options) (*Engine, error) {
	log := coalesce[Logger](opts.Logger, NopLogger{})
	hooks := coalesce[Hooks](opts.Hooks, NopHooks{})

	if opts.Strategy != nil && len(opts.Handlers) > 0 {
		return nil, ErrHandlersWithStrategy
	}

	strategy := opts.Strategy
	if strategy == nil {
		// The generic handler gets its own engine: nested values never see the
		// enum extension, so enum constants inside them encode as their names.
		fallback := jsoniter.Config{
			EscapeHTML:             opts.EscapeHTML,
			SortMapKeys:            opts.SortMapKeys,
			ValidateJsonRawMessage: true,
		}.Froze()
		strategy = NewRich(chain.New(fallback, opts.Handlers...)).WithHooks(hooks)
	}

	ext := &enumExtension{strategy: strategy, log: log, hooks: hooks}
	cfg := jsoniter.Config{
		EscapeHTML:             opts.EscapeHTML,
		SortMapKeys:            opts.SortMapKeys,
		ValidateJsonRawMessage: true,
	}
	api := cfg.Froze()
	api.RegisterExtension(ext)

	cfg.IndentionStep = coalesce(opts.IndentStep, defaultIndentStep)
	indented := cfg.Froze()
	indented.RegisterExtension(ext)

	log.Info("enumjson engine configured", Fields{
		"strategy": strategy.Name(),
		"handlers": len(opts.Handlers),
	})
	return &Engine{api: api, indented: indented, strategy: strategy}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts Options) *Engine {
	e, err := New(opts)
	if err != nil {
		panic(err)
	}
	return e
}

// Strategy returns the strategy bound at construction.
func (e *Engine) Strategy() Strategy { return e.strategy }

// API exposes the underlying jsoniter engine.
func (e *Engine) API() jsoniter.API { return e.api }

// Marshal renders v as compact JSON. Enum values anywhere in v go through the
// bound strategy. On error no output is returned.
func (e *Engine) Marshal(v any) ([]byte, error) { return marshal(e.api, v) }

func (e *Engine) MarshalToString(v any) (string, error) {
	b, err := marshal(e.api, v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalIndent renders v with Options.IndentStep spaces per level.
func (e *Engine) MarshalIndent(v any) ([]byte, error) { return marshal(e.indented, v) }

func marshal(api jsoniter.API, v any) ([]byte, error) {
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)
	stream.Attachment = nil

	stream.WriteVal(v)
	if stream.Error != nil {
		if err, ok := stream.Attachment.(*EncodeError); ok {
			return nil, err
		}
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// NewEncoder returns a stream encoder writing to w. Its errors carry the
// failure as text only; use Marshal when the typed error matters.
func (e *Engine) NewEncoder(w io.Writer) *jsoniter.Encoder { return e.api.NewEncoder(w) }

// Document converts v into a node tree. Enum values are handed straight to the
// strategy; anything else is rendered and parsed back.
func (e *Engine) Document(v any) (node.Node, error) {
	if ev, ok := v.(enum.Value); ok {
		if rv := reflect.ValueOf(ev); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return node.Null{}, nil
		}
		n, err := e.strategy.Serialize(ev)
		if err != nil {
			return nil, &EncodeError{Type: typeName(v), Strategy: e.strategy.Name(), Err: err}
		}
		return n, nil
	}
	data, err := marshal(e.api, v)
	if err != nil {
		return nil, err
	}
	return node.ParseBytes(e.api, data)
}

// Encode renders v with c, e.g. codec.CBOR or codec.Msgpack.
func (e *Engine) Encode(v any, c codec.Codec) ([]byte, error) {
	doc, err := e.Document(v)
	if err != nil {
		return nil, err
	}
	return c.Encode(doc)
}

// EncodeSet renders every constant of s in ordinal order as one framed bundle,
// each entry keyed by the constant name.
func EncodeSet[T enum.Value](e *Engine, s *enum.Set[T], c codec.Framed) ([]byte, error) {
	values := s.Values()
	entries := make([]codec.Entry, 0, len(values))
	for _, v := range values {
		doc, err := e.Document(v)
		if err != nil {
			return nil, err
		}
		entries = append(entries, codec.Entry{Name: v.Name(), Doc: doc})
	}
	return c.EncodeBundle(entries)
}
