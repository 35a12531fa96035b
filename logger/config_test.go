package logger

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestZapLevel(t *testing.T) {

	for level, expected := range map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		actual, err := (&Config{Level: level}).getZapLevel()
		require.NoError(t, err, level)
		require.Equal(t, zap.NewAtomicLevelAt(expected), actual, level)
	}
}

func TestZapLevelInvalid(t *testing.T) {

	_, err := (&Config{Level: "warning"}).getZapLevel()
	require.EqualError(t, err, `logger level (debug, info, warn, error, dpanic, panic, fatal): unrecognized level: "warning"`)

	l, err := New(Config{Level: "warning"})
	require.Error(t, err)
	require.Nil(t, l)
}

func TestZapConfig(t *testing.T) {

	prod, err := Config{}.toZapConfig()
	require.NoError(t, err)
	require.False(t, prod.Development)
	require.Equal(t, "json", prod.Encoding)

	dev, err := Config{Debug: true, Level: "debug"}.toZapConfig()
	require.NoError(t, err)
	require.True(t, dev.Development)
	require.Equal(t, "console", dev.Encoding)
	require.True(t, dev.Level.Enabled(zapcore.DebugLevel))
}

func TestZapConfigOutput(t *testing.T) {

	dir, err := ioutil.TempDir("", "logger")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "out.log")
	require.NoError(t, ioutil.WriteFile(path, nil, 0644))

	cfg, err := Config{Output: []string{path}}.toZapConfig()
	require.NoError(t, err)
	require.Contains(t, cfg.OutputPaths, path)

	_, err = Config{Output: []string{filepath.Join(dir, "missing", "out.log")}}.toZapConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "logger output path")
}

func TestZapConfigTime(t *testing.T) {

	_, err := Config{Time: "iso8601"}.toZapConfig()
	require.NoError(t, err)

	l, err := New(Config{Time: "millis", Level: "warn"})
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.WarnLevel))
}
