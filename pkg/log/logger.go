package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

const (
	// ErrAttrKey is the attribute key used for error values.
	ErrAttrKey = "error"
)

// ErrAttr wraps an error for structured logging.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.l.Debug(msg, fields...) }
func (s *slogLogger) Info(msg string, fields ...any)  { s.l.Info(msg, fields...) }
func (s *slogLogger) Warn(msg string, fields ...any)  { s.l.Warn(msg, fields...) }

func (s *slogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			rest := fields[1:]
			args := make([]any, 0, len(rest)+1)
			args = append(args, ErrAttr(err))
			args = append(args, rest...)
			s.l.Error(msg, args...)
			return
		}
	}
	s.l.Error(msg, fields...)
}

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.l.With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.l.Enabled(ctx, slog.Level(level))
}

// slogProvider is the default LoggerProvider backed by a JSON slog handler
// writing to stderr. Algorithms stay quiet unless the level is lowered.
type slogProvider struct {
	level *slog.LevelVar
	root  *slog.Logger
}

func newSlogProvider() *slogProvider {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &slogProvider{
		level: level,
		root:  slog.New(handler),
	}
}

func (p *slogProvider) GetLogger() Logger {
	return &slogLogger{l: p.root}
}

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{l: p.root.With(ComponentKey, name)}
}

func (p *slogProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

var (
	providerMu sync.RWMutex
	provider   LoggerProvider = newSlogProvider()
)

// SetProvider replaces the package-level LoggerProvider. Passing nil restores
// the default slog provider. Intended for tests and applications that want a
// different backend.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	if p == nil {
		p = newSlogProvider()
	}
	provider = p
}

// GetLogger returns the default logger.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLogger()
}

// GetLoggerWithName returns a logger tagged with a component name, such as
// "pattern.rafc".
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLoggerWithName(name)
}

// SetLevel sets the minimum log level of the current provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	provider.SetLevel(level)
}
