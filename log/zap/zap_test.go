package zap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/enumjson"
)

func TestLoggerForwardsLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Info("enumjson engine configured", enumjson.Fields{"strategy": "rich", "handlers": 0})
	l.Error("enum encode failed", enumjson.Fields{"type": "*pkg.Color", "err": errors.New("boom")})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "enumjson", entries[0].LoggerName)
	assert.Equal(t, map[string]any{"handlers": int64(0), "strategy": "rich"}, entries[0].ContextMap())

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["err"])
	assert.Equal(t, "type", entries[1].Context[1].Key)
}

func TestLoggerPlugsIntoEngine(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	_, err := enumjson.New(enumjson.Options{Logger: New(zap.New(core))})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("enumjson engine configured").Len())
}
