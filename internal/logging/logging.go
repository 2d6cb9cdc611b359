// Package logging configures the process-wide logrus logger and bridges gorm onto it.
package logging

import (
	"strings"
	"time"

	"github.com/localnerve/gamesdb/internal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

// Configure applies the configured level and format to the standard logrus logger
func Configure(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(cfg.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	}
}

// Gorm returns a gorm logger that writes through the standard logrus logger
func Gorm(level string) logger.Interface {
	return logger.New(logrus.StandardLogger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  GormLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// GormLevel maps a level name onto gorm's log levels. Unknown names map to Warn.
func GormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent", "off":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug", "trace":
		return logger.Info
	}
	return logger.Warn
}
