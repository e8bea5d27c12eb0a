package memalign

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"unsafe"
)

// Logger wraps slog.Logger with allocator-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogAlloc logs one allocation attempt.
func (l *Logger) LogAlloc(ptr unsafe.Pointer, size int, alignment uintptr) {
	if ptr == nil {
		l.Warn("allocation failed",
			"size", size,
			"alignment", alignment,
			"strategy", Strategy(),
		)
		return
	}
	l.Debug("block allocated",
		"addr", fmt.Sprintf("%#x", uintptr(ptr)),
		"size", size,
		"alignment", alignment,
	)
}

// LogFree logs the release of a block.
func (l *Logger) LogFree(ptr unsafe.Pointer) {
	l.Debug("block freed",
		"addr", fmt.Sprintf("%#x", uintptr(ptr)),
	)
}

var traceLogger atomic.Pointer[Logger]

func init() {
	if os.Getenv("MEMALIGN_TRACE") != "" {
		SetTraceLogger(NewTextLogger(slog.LevelDebug))
	}
}

// SetTraceLogger installs a logger that records every Alloc and Free going
// through the package, including failures. Pass nil to disable. Tracing is
// also enabled at startup when MEMALIGN_TRACE is set in the environment.
func SetTraceLogger(l *Logger) {
	traceLogger.Store(l)
	if l != nil {
		l.Debug("allocation tracing enabled",
			"strategy", Strategy(),
			"isa", ActiveISA(),
		)
	}
}

func traceAlloc(ptr unsafe.Pointer, size int, alignment uintptr) {
	if l := traceLogger.Load(); l != nil {
		l.LogAlloc(ptr, size, alignment)
	}
}

func traceFree(ptr unsafe.Pointer) {
	if l := traceLogger.Load(); l != nil {
		l.LogFree(ptr)
	}
}
