package tenantforum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debugf("debug %d", 1)
	logger.Infof("info %s", "two")
	logger.Warnf("warn %v", true)
	logger.Errorf("error %d", 4)
	logger.Info("plain")

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "debug 1", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "info two", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "warn true", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "error 4", entries[3].Message)
	assert.Equal(t, "plain", entries[4].Message)
}

func TestZapLogger_Nil(t *testing.T) {
	logger := NewZapLogger(nil)

	assert.NotPanics(t, func() {
		logger.Infof("dropped %d", 1)
	})
}

func TestLoggersImplementInterface(t *testing.T) {
	var _ Logger = &NoopLogger{}
	var _ Logger = NewZapLogger(nil)
}
