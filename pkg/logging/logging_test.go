package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestFlatten(t *testing.T) {
	kv := flatten([]Fields{{"frame": 3}})
	require.Len(t, kv, 2)
	assert.Equal(t, "frame", kv[0])
	assert.Equal(t, 3, kv[1])

	assert.Nil(t, flatten(nil))
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	log := NewNopLogger()

	log.Debug("debug", Fields{"a": 1})
	log.Info("info")
	log.Warn("warn", Fields{"b": 2}, Fields{"c": 3})
	log.Error("error")

	child := log.WithFields(Fields{"component": "analyzer"})
	require.NotNil(t, child)
	child.Info("scoped")
}
