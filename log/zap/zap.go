package zap

import (
	"sort"

	"go.uber.org/zap"

	"github.com/unkn0wn-root/enumjson"
)

var _ enumjson.Logger = Logger{}

// Logger adapts a *zap.Logger. Fields are emitted in key order.
type Logger struct{ L *zap.Logger }

// New names l "enumjson" so engine logs are easy to filter.
func New(l *zap.Logger) Logger { return Logger{L: l.Named("enumjson")} }

func (z Logger) Debug(msg string, f enumjson.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f enumjson.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f enumjson.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f enumjson.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f enumjson.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
