package logx

import (
	"strings"
	"sync"

	"stocksinfo/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.Logger
)

// New builds a production logger writing JSON to stderr at level.
func New(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Sampling = nil
	zapCfg.DisableStacktrace = true
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.OutputPaths = []string{"stderr"}
	if level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, err
		}
	}
	return zapCfg.Build(zap.AddCaller())
}

// L returns the process logger, configured from LOG_LEVEL on first use.
func L() *zap.Logger {
	once.Do(func() {
		l, err := New(config.Load().LogLevel)
		if err != nil {
			l, _ = New("info")
			l.Warn("logx.invalid_level", zap.Error(err))
		}
		logger = l
	})
	return logger
}
