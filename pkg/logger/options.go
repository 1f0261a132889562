package logger

import "go.uber.org/zap/zapcore"

// Options holds configuration options for the logger.
type Options struct {
	level           Level
	name            string
	outputPaths     []string
	callerTraceSkip int
}

// Level represents the severity level of the log.
type Level string

const (
	// DebugLevel is used for debug messages.
	DebugLevel Level = "debug"
	// InfoLevel is used for informational messages.
	InfoLevel Level = "info"
	// WarnLevel is used for warning messages.
	WarnLevel Level = "warn"
	// ErrorLevel is used for error messages.
	ErrorLevel Level = "error"
)

func (level Level) zapLevel() zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithLoggingLevel sets the minimum level that will be logged. Defaults to
// info when unset.
func WithLoggingLevel(level Level) Options {
	return Options{level: level}
}

// WithName stamps every entry with a service name field.
func WithName(name string) Options {
	return Options{name: name}
}

// WithOutputPaths sets the paths logs are written to. "stdout" and "stderr"
// are interpreted as the process streams; other values are file paths.
func WithOutputPaths(paths []string) Options {
	return Options{outputPaths: paths}
}

// WithCallerTraceSkip skips the given number of frames when resolving the
// caller annotation.
func WithCallerTraceSkip(skip int) Options {
	return Options{callerTraceSkip: skip}
}
