//go:build go1.21

package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unkn0wn-root/enumjson"
)

func TestLoggerWritesSortedAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{
		Level: stdslog.LevelInfo,
		ReplaceAttr: func(_ []string, a stdslog.Attr) stdslog.Attr {
			if a.Key == stdslog.TimeKey {
				return stdslog.Attr{}
			}
			return a
		},
	})
	l := Logger{L: stdslog.New(h)}

	l.Debug("hidden", enumjson.Fields{"x": 1})
	l.Info("enumjson engine configured", enumjson.Fields{"strategy": "minimal", "handlers": 0})

	out := strings.TrimSpace(buf.String())
	assert.Equal(t, `level=INFO msg="enumjson engine configured" handlers=0 strategy=minimal`, out)
}
