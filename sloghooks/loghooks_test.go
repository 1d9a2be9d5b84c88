package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestFallbackSampling(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{FallbackEvery: 3})

	for i := 0; i < 9; i++ {
		h.FallbackUsed("pkg.Color", "object")
	}
	assert.Equal(t, 3, strings.Count(buf.String(), "enumjson.fallback_used"))
}

func TestEncodeFailedAlwaysLogged(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{})

	h.EncodeFailed("*pkg.Color", errors.New("boom"))
	out := buf.String()
	assert.Contains(t, out, "enumjson.encode_failed")
	assert.Contains(t, out, "type=*pkg.Color")
	assert.Contains(t, out, "err=boom")
}

func TestNilLoggerIsSilent(t *testing.T) {
	h := New(nil, Options{})
	assert.NotPanics(t, func() {
		h.EncodeFailed("t", errors.New("x"))
		h.FallbackUsed("t", "f")
	})
}
