package enumjson

// Fields carries the structured context of one log line. The engine uses the
// keys "strategy", "handlers", "type" and "err".
type Fields map[string]any

// Logger receives the engine's log lines. New logs the configured strategy at
// Info; a failed encode is logged at Error with the Go type and the cause.
// Nothing is logged per successful encode. Adapters for zap, logrus and slog
// live under log/.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything. It is used when Options.Logger is nil.
type NopLogger struct{}

var _ Logger = NopLogger{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
