package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

type options struct {
	out    io.Writer
	level  zerolog.Level
	fields map[string]string
}

// Option customizes a ZerologLogger.
type Option func(*options)

// WithOutput sets the destination. Defaults to stderr: stdout is reserved
// for command output.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLevel sets the minimum level. Defaults to info.
func WithLevel(l zerolog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithVerbose lowers the level to debug when v is true.
func WithVerbose(v bool) Option {
	return func(o *options) {
		if v {
			o.level = zerolog.DebugLevel
		}
	}
}

// WithField attaches a constant string field to every entry.
func WithField(key, value string) Option {
	return func(o *options) { o.fields[key] = value }
}

// NewZerologLogger creates a ZerologLogger using the APP_ENV environment variable
// to determine the output format. All logs include the provided component field.
func NewZerologLogger(component string, opts ...Option) *ZerologLogger {
	o := options{out: os.Stderr, level: zerolog.InfoLevel, fields: map[string]string{}}
	for _, opt := range opts {
		opt(&o)
	}
	out := o.out
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.RFC3339}
	}
	ctx := zerolog.New(out).Level(o.level).With().Timestamp().Str("component", component)
	for k, v := range o.fields {
		ctx = ctx.Str(k, v)
	}
	return &ZerologLogger{log: ctx.Logger()}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Infow(msg string, fields map[string]any) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
