// Package logger wraps zap with the console format used by the harness
// and the CLI: colored levels, short timestamps, debug gated by verbose.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Title(msg string)
}

type zapLogger struct {
	*zap.Logger
	writer io.Writer
}

// Options configures the logger.
type Options struct {
	Verbose bool
	Writer  io.Writer
}

// New creates a logger writing to stderr.
func New(verbose bool) Logger {
	return NewWithOptions(Options{Verbose: verbose, Writer: os.Stderr})
}

// NewWithOptions creates a logger with full configuration.
func NewWithOptions(opts Options) Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    coloredLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(opts.Writer),
		level,
	)

	return &zapLogger{Logger: zap.New(core), writer: opts.Writer}
}

func (l *zapLogger) Title(msg string) {
	fmt.Fprintln(l.writer)
	color.New(color.FgCyan, color.Bold).Fprintln(l.writer, msg)
	fmt.Fprintln(l.writer)
}

func coloredLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var levelColor *color.Color
	switch l {
	case zapcore.DebugLevel:
		levelColor = color.New(color.FgWhite)
	case zapcore.InfoLevel:
		levelColor = color.New(color.FgBlue)
	case zapcore.WarnLevel:
		levelColor = color.New(color.FgYellow)
	case zapcore.ErrorLevel:
		levelColor = color.New(color.FgRed)
	default:
		levelColor = color.New(color.FgWhite)
	}
	enc.AppendString(levelColor.Sprint(l.CapitalString()))
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgWhite).Sprintf("[%s]", t.Format("15:04:05")))
}
