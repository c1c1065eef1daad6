package infra

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/authflow/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMb  = 10
	logFileMaxBackups = 3
)

// Logger configures standard logrus logger. When toFile is set, output goes to rotated
// log file so it does not interfere with terminal ui
func Logger(cfg config.LogCfg, toFile bool) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level - %w", err)
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: toFile})
	}

	if !toFile {
		logrus.SetOutput(os.Stderr)
		return Closers(nil), nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    logFileMaxSizeMb,
		MaxBackups: logFileMaxBackups,
	}
	logrus.SetOutput(file)
	return file, nil
}
