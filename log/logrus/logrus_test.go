package logrus

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/enumjson"
)

func TestLoggerForwardsLevelsAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Debug("dbg", nil)
	l.Warn("enum encode failed", enumjson.Fields{"type": "*pkg.Color", "err": errors.New("boom")})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, "enumjson", entries[0].Data["component"])

	last := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, last.Level)
	assert.Equal(t, "*pkg.Color", last.Data["type"])
	assert.EqualError(t, last.Data[logrus.ErrorKey].(error), "boom")
}
