// Package logger builds the zap logger for the selected environment
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvProd = "prod"
	EnvCLI  = "cli"
)

// New returns a logger writing to stderr:
// prod - JSON with ISO8601 time, cli - bare messages, anything else - zap development config.
func New(env string) (*zap.Logger, error) {
	switch env {
	case EnvProd:
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.InfoLevel,
		)
		return zap.New(core), nil
	case EnvCLI:
		return NewCLI(os.Stderr), nil
	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		return zapCfg.Build()
	}
}

// NewCLI prints only the message and fields, so stderr of the command line tool stays readable.
func NewCLI(w io.Writer) *zap.Logger {
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.InfoLevel,
	)
	return zap.New(core)
}
