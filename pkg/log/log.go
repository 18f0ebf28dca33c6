package log

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

var global = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Setup configures the global logger from config values.
func Setup(level, file string) error {
	lv, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %s", level)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lv).With().Timestamp().Logger()

	if len(file) > 0 {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
		if err != nil {
			return errors.Wrapf(err, "open log file %s", file)
		}
		logger = zerolog.New(f).Level(lv).With().Timestamp().Logger()
	}

	global = logger

	return nil
}

// GetGlobalLogger .
func GetGlobalLogger() *zerolog.Logger {
	return &global
}

// Fields is a contextual logger bound to a function or scope.
type Fields struct {
	l zerolog.Logger
}

// WithFunc .
func WithFunc(fname string) *Fields {
	return &Fields{l: global.With().Str("func", fname).Logger()}
}

// WithField .
func (f *Fields) WithField(key string, value any) *Fields {
	return &Fields{l: f.l.With().Interface(key, value).Logger()}
}

// Debugf .
func (f *Fields) Debugf(_ context.Context, format string, args ...any) {
	f.l.Debug().Msgf(format, args...)
}

// Infof .
func (f *Fields) Infof(_ context.Context, format string, args ...any) {
	f.l.Info().Msgf(format, args...)
}

// Warnf .
func (f *Fields) Warnf(_ context.Context, format string, args ...any) {
	f.l.Warn().Msgf(format, args...)
}

// Error .
func (f *Fields) Error(_ context.Context, err error, msgs ...any) {
	f.l.Error().Err(err).Msg(fmt.Sprint(msgs...))
}

// Errorf .
func (f *Fields) Errorf(_ context.Context, err error, format string, args ...any) {
	f.l.Error().Err(err).Msgf(format, args...)
}

// Debugf .
func Debugf(ctx context.Context, format string, args ...any) {
	WithFunc("").Debugf(ctx, format, args...)
}

// Infof .
func Infof(ctx context.Context, format string, args ...any) {
	WithFunc("").Infof(ctx, format, args...)
}

// Warnf .
func Warnf(ctx context.Context, format string, args ...any) {
	WithFunc("").Warnf(ctx, format, args...)
}

// Errorf .
func Errorf(ctx context.Context, err error, format string, args ...any) {
	WithFunc("").Errorf(ctx, err, format, args...)
}

// Fatalf .
func Fatalf(_ context.Context, err error, format string, args ...any) {
	global.Fatal().Err(err).Msgf(format, args...)
}
