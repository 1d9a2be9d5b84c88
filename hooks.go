package enumjson

// Hooks are lightweight callbacks for encode events.
// Implementations MUST be cheap, non-blocking and safe for concurrent use:
// the engine calls them on the encode path.
type Hooks interface {
	// A strategy failed; the Marshal call returns err and no output.
	EncodeFailed(typeName string, err error)

	// The rich strategy handed a field to the generic catch-all handler.
	// Frequent calls for one field usually mean a dedicated handler is missing.
	FallbackUsed(typeName, fieldName string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EncodeFailed(string, error)  {}
func (NopHooks) FallbackUsed(string, string) {}
