package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is assigned once in main before any
// command runs; packages log through it instead of carrying their own.
var Log *zap.Logger

// NewLogger builds a JSON logger at the given level. An unparseable level
// falls back to info so a typo in --log does not take the server down.
func NewLogger(logLevel string, outputStdout []string, outputStderr []string) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	atomicLevel, err := zap.ParseAtomicLevel(logLevel)

	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q, using info\n", logLevel)
		atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	config := zap.Config{
		Level:            atomicLevel,
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      outputStdout,
		ErrorOutputPaths: outputStderr,
	}

	return zap.Must(config.Build())
}
