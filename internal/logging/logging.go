// Package logging provides the extension's structured logger.
//
// The host process has no console, so logs go to a file in the plugins
// configuration directory. That directory is only known after setInfo, but
// components want their loggers at construction time. Output therefore
// starts out discarded and is redirected once Configure is called; loggers
// handed out earlier follow the redirect.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when the configured level is empty or unknown.
const DefaultLevel = zapcore.InfoLevel

// ParseLevel parses a level name. Unknown names yield DefaultLevel.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return DefaultLevel
	}
}

// Config configures the log output.
type Config struct {
	// Level is the minimum level name ("debug", "info", "warn", "error").
	Level string
	// Path is the log file. Relative paths are resolved against Dir.
	Path string
	// Dir is the base directory for a relative Path.
	Dir string
}

// Resolve returns the absolute log file path, or "" when logging to a file
// is disabled.
func (c Config) Resolve() string {
	if c.Path == "" {
		return ""
	}
	if filepath.IsAbs(c.Path) || c.Dir == "" {
		return c.Path
	}
	return filepath.Join(c.Dir, c.Path)
}

// Logging owns the root logger and its redirectable output.
type Logging struct {
	logger *zap.Logger
	level  zap.AtomicLevel
	sink   *switchSink
}

// New creates a logger that discards output until Configure is called.
// Fields are attached to every entry.
func New(fields ...zap.Field) *Logging {
	level := zap.NewAtomicLevelAt(DefaultLevel)
	sink := &switchSink{w: zapcore.AddSync(io.Discard)}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), sink, level)

	return &Logging{
		logger: zap.New(core).With(fields...),
		level:  level,
		sink:   sink,
	}
}

// Logger returns the root logger.
func (l *Logging) Logger() *zap.Logger {
	return l.logger
}

// Component returns a logger named after a component.
func (l *Logging) Component(name string) *zap.Logger {
	return l.logger.Named(name)
}

// Level returns the current minimum level.
func (l *Logging) Level() zapcore.Level {
	return l.level.Level()
}

// Configure sets the level and redirects output to the configured file.
// An empty path keeps output discarded. On error the previous output stays
// in place.
func (l *Logging) Configure(cfg Config) error {
	l.level.SetLevel(ParseLevel(cfg.Level))

	path := cfg.Resolve()
	if path == "" {
		return l.sink.swap(zapcore.AddSync(io.Discard), nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	return l.sink.swap(zapcore.AddSync(f), f)
}

// Redirect sends output to w. Used by tests and by hosts that want logs
// somewhere other than a file.
func (l *Logging) Redirect(w io.Writer) error {
	return l.sink.swap(zapcore.AddSync(w), nil)
}

// Close flushes and closes the current output. The logger stays usable and
// discards from then on.
func (l *Logging) Close() error {
	_ = l.logger.Sync()
	return l.sink.swap(zapcore.AddSync(io.Discard), nil)
}

// switchSink is a WriteSyncer whose target can change after loggers have
// been built on top of it.
type switchSink struct {
	mu     sync.Mutex
	w      zapcore.WriteSyncer
	closer io.Closer
}

func (s *switchSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Sync()
}

func (s *switchSink) swap(w zapcore.WriteSyncer, closer io.Closer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.w.Sync()
	var err error
	if s.closer != nil {
		err = s.closer.Close()
	}
	s.w = w
	s.closer = closer
	return err
}
