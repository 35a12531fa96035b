package logger

import (
	"os"
	"strings"

	pkgerr "github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config of the logger wrapper
type Config struct {
	Debug  bool     `json:"debug" mapstructure:"debug"`
	Level  string   `json:"level" mapstructure:"level"`
	Time   string   `json:"time" mapstructure:"time"`
	Output []string `json:"output" mapstructure:"output"`
}

// New builds a zap logger from the config
func New(c Config) (*zap.Logger, error) {

	zapCfg, err := c.toZapConfig()
	if err != nil {
		return nil, err
	}

	return zapCfg.Build()
}

func (c Config) toZapConfig() (*zap.Config, error) {

	var zapCfg zap.Config
	if c.Debug {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := c.getZapLevel()
	if err != nil {
		return nil, err
	}
	zapCfg.Level = level

	if v := strings.TrimSpace(c.Time); v != "" {
		if err := zapCfg.EncoderConfig.EncodeTime.UnmarshalText([]byte(v)); err != nil {
			return nil, pkgerr.Wrap(err, "logger time format (iso8601, millis, nanos)")
		}
	}

	for _, path := range c.Output {
		if path != "stdout" && path != "stderr" {
			if _, err := os.Stat(path); err != nil {
				return nil, pkgerr.Wrap(err, "logger output path")
			}
		}
		zapCfg.OutputPaths = append(zapCfg.OutputPaths, path)
	}

	return &zapCfg, nil
}

// getZapLevel returns info level for an empty name
func (c Config) getZapLevel() (zap.AtomicLevel, error) {

	level := zapcore.InfoLevel
	if v := strings.TrimSpace(c.Level); v != "" {
		if err := level.Set(v); err != nil {
			return zap.AtomicLevel{}, pkgerr.Wrap(err, "logger level (debug, info, warn, error, dpanic, panic, fatal)")
		}
	}

	return zap.NewAtomicLevelAt(level), nil
}
