package logging_test

import (
	"testing"

	"code.vegaprotocol.io/stockstream/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	t.Run("parse level names", testParseLevel)
	t.Run("named loggers carry their own level", testNamedLevelIsIndependent)
	t.Run("with keeps fields and level", testWithKeepsFields)
	t.Run("logger built from config", testNewLoggerFromConfig)
}

func newObservedLogger(level zapcore.Level) (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.New(core, &zap.Config{Level: zap.NewAtomicLevelAt(level)}), logs
}

func testParseLevel(t *testing.T) {
	for name, expected := range map[string]logging.Level{
		"debug":   logging.DebugLevel,
		"INFO":    logging.InfoLevel,
		"warning": logging.WarnLevel,
		"warn":    logging.WarnLevel,
		"error":   logging.ErrorLevel,
	} {
		lvl, err := logging.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, lvl, name)
	}

	_, err := logging.ParseLevel("chatty")
	assert.ErrorIs(t, err, logging.ErrInvalidLogLevel)
}

func testNamedLevelIsIndependent(t *testing.T) {
	root, logs := newObservedLogger(zapcore.InfoLevel)

	child := root.Named("prices")
	child.SetLevel(logging.DebugLevel)

	root.Debug("dropped")
	child.Debug("kept")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, "prices", entry.LoggerName)
	assert.Equal(t, "prices", child.GetName())
	assert.Equal(t, logging.InfoLevel, root.GetLevel())
	assert.Equal(t, "prices.session", child.Named("session").GetName())
}

func testWithKeepsFields(t *testing.T) {
	root, logs := newObservedLogger(zapcore.WarnLevel)

	log := root.With(logging.String("symbol", "AAPL"))
	log.Info("below level")
	log.Warn("above level")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "AAPL", logs.All()[0].ContextMap()["symbol"])
}

func testNewLoggerFromConfig(t *testing.T) {
	cfg := logging.NewDefaultConfig()
	cfg.Level = "not-a-level"

	log := logging.NewLoggerFromConfig(cfg)
	defer log.AtExit()
	assert.Equal(t, logging.InfoLevel, log.GetLevel())

	log = logging.NewTestLogger()
	assert.Equal(t, logging.DebugLevel, log.GetLevel())
}
