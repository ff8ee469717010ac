package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mwiater/maeplot/internal/util"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = zap.NewNop()
)

// Options configures the run logger.
type Options struct {
	// Path of the JSON log file. Empty disables file logging.
	Path string
	// Console mirrors debug-level records to stderr.
	Console bool
}

// Init replaces the package logger. Every record carries a run_id so the
// lines of one invocation can be grouped in the shared log file.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()

	var cores []zapcore.Core
	if opts.Path != "" {
		file, err := openLogFile(opts.Path)
		if err != nil {
			return err
		}
		logFile = file
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(file), zapcore.InfoLevel))
	}
	if opts.Console {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), zapcore.DebugLevel))
	}
	if len(cores) == 0 {
		logger = zap.NewNop()
		return nil
	}

	logger = zap.New(zapcore.NewTee(cores...)).With(zap.String("run_id", uuid.NewString()))
	return nil
}

// Close flushes the logger and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	_ = logger.Sync()
	logger = zap.NewNop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the current structured logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// LogEvent writes a formatted info record.
func LogEvent(format string, args ...any) {
	Logger().Info(fmt.Sprintf(format, args...))
}

func openLogFile(path string) (*os.File, error) {
	if err := util.EnsureParentDir(path); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", path, err)
	}
	return file, nil
}
