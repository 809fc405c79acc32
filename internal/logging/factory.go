package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/AndresYusty/cat-frontend/internal/filex"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Options selects the backend, level and sink of the process logger.
type Options struct {
	// Backend is "slog" (default) or "zap".
	Backend string
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// File, when set, sends output to a daily-rotated file instead of Output.
	File string
	// Output is the sink used when File is empty; nil means os.Stderr.
	Output io.Writer
}

// New builds a Logger from opts. The returned cleanup flushes and releases the
// sink and must be called on shutdown.
func New(opts Options) (Logger, func() error, error) {
	w := opts.Output
	if w == nil {
		w = os.Stderr
	}
	cleanup := func() error { return nil }

	if opts.File != "" {
		if err := filex.EnsureParentDir(opts.File); err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		rl, err := rotatelogs.New(
			opts.File+".%Y%m%d",
			rotatelogs.WithLinkName(opts.File),
			rotatelogs.WithRotationTime(24*time.Hour),
			rotatelogs.WithMaxAge(7*24*time.Hour),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = rl
		cleanup = rl.Close
	}

	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h)), cleanup, nil
	case BackendZap:
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), zapLevel(opts.Level))
		zl := NewZapLogger(zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)))
		closeSink := cleanup
		return zl, func() error {
			_ = zl.Sync()
			return closeSink()
		}, nil
	default:
		_ = cleanup()
		return nil, nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func slogLevel(l string) slog.Level {
	switch strings.ToLower(l) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(l string) zapcore.Level {
	switch strings.ToLower(l) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
