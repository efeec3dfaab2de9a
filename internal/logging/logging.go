package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/codedoc/solution-analyzer/internal/config"
)

var levelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// New builds the analyzer's logger: a console core on stderr, plus a rotated
// JSON file core when cfg.Dir is set. Diagnostics go to stderr so the
// summary confirmation on stdout stays clean.
func New(cfg config.LoggingConfig) *zap.SugaredLogger {
	level, ok := levelMap[strings.ToLower(cfg.Level)]
	if !ok {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		),
	}

	if cfg.Dir != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:  filepath.Join(cfg.Dir, "solution-analyzer.log"),
			MaxSize:   100, // megabytes
			MaxAge:    5,   // days
			Compress:  true,
			LocalTime: true,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			fileWriter,
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}
