package logging

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// Logger is a key/value structured logger backed by zap.
type Logger struct {
	zap    *zap.Logger
	closed atomic.Bool
}

var defaultLogger atomic.Pointer[Logger]

// MirrorFunc receives every entry that passes the level check, e.g. to
// forward it to an OpenTelemetry log exporter.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var mirror atomic.Pointer[MirrorFunc]

// SetMirror installs fn as the process-wide mirror; nil removes it.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&fn)
}

func init() {
	defaultLogger.Store(NewNop())
}

// NewJSON writes JSON lines to stdout at the given level.
func NewJSON(level Level) *Logger {
	return New(level, os.Stdout)
}

func New(level Level, w io.Writer) *Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	return FromZap(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(zapcore.ErrorLevel)))
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z}
}

func Default() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	return NewNop()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	defaultLogger.Store(logger)
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// Sync flushes buffered entries once; later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	if l.closed.CompareAndSwap(false, true) {
		return l.zap.Sync()
	}
	return nil
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{zap: l.zap.With(zapFields(args)...)}
}

// Named tags entries with a component name, e.g. "discordbot".
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{zap: l.zap.Named(name)}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(nil, zap.DebugLevel, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(nil, zap.InfoLevel, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(nil, zap.WarnLevel, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(nil, zap.ErrorLevel, msg, args...)
}

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.DebugLevel, msg, args...)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.InfoLevel, msg, args...)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.WarnLevel, msg, args...)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.ErrorLevel, msg, args...)
}

func (l *Logger) log(ctx context.Context, level zapcore.Level, msg string, args ...any) {
	logger := l
	if logger == nil {
		logger = Default()
	}
	ce := logger.zap.Check(level, msg)
	if ce == nil {
		return
	}

	fields := zapFields(args)
	if ctx != nil {
		fields = append(fields, traceFields(ctx)...)
	}
	ce.Write(fields...)

	if fn := mirror.Load(); fn != nil {
		(*fn)(ctx, level, msg, args...)
	}
}

func traceFields(ctx context.Context) []zap.Field {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	}
}

func zapFields(args []any) []zap.Field {
	if len(args) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, (len(args)+1)/2+2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}

		if i+1 >= len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}

		value := args[i+1]
		if err, ok := value.(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, value))
	}

	return out
}
