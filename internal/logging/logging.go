package logging

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ssv8317/canteen-ordering/internal/config"
)

var onceLog sync.Once

// Init installs the global zap logger. Safe to call more than once; only
// the first call takes effect.
func Init(appName string, cfg *config.Config) error {
	var initErr error
	onceLog.Do(func() {
		zapConfig := zap.NewProductionConfig()

		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			initErr = fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			return
		}

		zapConfig.Level = zap.NewAtomicLevelAt(lvl)
		zapConfig.OutputPaths = []string{cfg.LogFile}
		zapConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

		logger, err := zapConfig.Build()
		if err != nil {
			initErr = fmt.Errorf("build logger: %w", err)
			return
		}

		logger = logger.Named(appName)
		zap.ReplaceGlobals(logger)
		zap.RedirectStdLog(logger)
	})
	return initErr
}
