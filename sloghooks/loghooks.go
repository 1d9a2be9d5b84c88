package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/enumjson"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	FallbackEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	fallbackCtr atomic.Uint64
}

var _ enumjson.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) EncodeFailed(typeName string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("enumjson.encode_failed",
		"type", typeName,
		"err", err)
}

func (h *Hooks) FallbackUsed(typeName, fieldName string) {
	if h.l == nil || !sample(h.opts.FallbackEvery, &h.fallbackCtr) {
		return
	}
	h.l.Debug("enumjson.fallback_used",
		"type", typeName,
		"field", fieldName)
}
