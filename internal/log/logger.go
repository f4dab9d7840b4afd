package log

import (
	"io"
	"os"
	"sync/atomic"

	"folio/internal/errors"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

var (
	isDebug atomic.Bool
	logger  = newLogger(options{out: os.Stderr})
)

// Field is a single structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*options)

type options struct {
	out  io.Writer
	file *os.File
	json bool
	err  error
}

// WithOutput sends log lines to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithFile appends log lines to the file at path. The terminal belongs to
// the TUI, so this is how a running page logs.
func WithFile(path string) Option {
	return func(o *options) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			kind := errors.Unknown
			switch {
			case os.IsNotExist(err):
				kind = errors.FileNotFound
			case os.IsPermission(err):
				kind = errors.FileAccessDenied
			}
			o.err = errors.NewFileError("cannot open log file", path, kind, err)
			return
		}
		o.out = f
		o.file = f
	}
}

// WithJSON switches the formatter to one JSON object per line.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// Logger writes leveled, structured log lines through logrus.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// NewLogger builds a logger writing to stderr unless an option says
// otherwise. It fails only when WithFile cannot open its file.
func NewLogger(opts ...Option) (*Logger, error) {
	o := options{out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		if o.file != nil {
			o.file.Close()
		}
		return nil, o.err
	}
	return newLogger(o), nil
}

func newLogger(o options) *Logger {
	base := logrus.New()
	base.SetOutput(o.out)
	// Debug filtering happens in Debug/Debugf so SetDebug affects loggers
	// that already exist.
	base.SetLevel(logrus.DebugLevel)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}

	return &Logger{entry: logrus.NewEntry(base), file: o.file}
}

// Close releases the log file opened by WithFile, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Configure replaces the package-level logger and returns it so the caller
// can Close it on shutdown. On error the current logger stays in place.
func Configure(opts ...Option) (*Logger, error) {
	l, err := NewLogger(opts...)
	if err != nil {
		return nil, err
	}
	logger = l
	return logger, nil
}

func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// With returns a logger that adds fields to every line.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), file: l.file}
}

// WithError attaches err and, for application errors, its kind and subject.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F("error", nil))
	}
	fields := []Field{F("error", err.Error()), F("error_kind", int(errors.KindOf(err)))}

	var fileErr *errors.FileError
	var configErr *errors.ConfigError
	var elemErr *errors.ElementError
	switch {
	case errors.As(err, &fileErr):
		fields = append(fields, F("path", fileErr.Path()))
	case errors.As(err, &configErr):
		fields = append(fields, F("param", configErr.Param()))
	case errors.As(err, &elemErr):
		fields = append(fields, F("scope", elemErr.Scope()), F("element", elemErr.Element()))
	}
	return l.With(fields...)
}

func (l *Logger) Info(msg string) { l.entry.Info(msg) }

func (l *Logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *Logger) Warn(msg string) { l.entry.Warn(msg) }

func (l *Logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *Logger) Error(msg string) { l.entry.Error(msg) }

func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Debug logs only while debug output is enabled.
func (l *Logger) Debug(msg string) {
	if isDebug.Load() {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message only while debug output is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		l.entry.Debugf(format, args...)
	}
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger with err attached.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	logger.WithError(err).Error(msg)
}

func Info(msg string) { logger.Info(msg) }

func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

func Warn(msg string) { logger.Warn(msg) }

func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }

func Error(msg string) { logger.Error(msg) }

func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

func Debug(msg string) { logger.Debug(msg) }

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
