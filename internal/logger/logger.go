// Package logger configures logrus for the relief desk and bridges gorm onto it.
package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/diewo77/go-relief/internal/config"
	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Setup configures the standard logrus logger from cfg and returns it.
// When cfg.File is set, output goes to stdout and a rotating file.
func Setup(cfg config.LogConfig) *logrus.Logger {
	l := logrus.StandardLogger()
	configure(l, cfg, os.Stdout)
	return l
}

func configure(l *logrus.Logger, cfg config.LogConfig, stdout io.Writer) {
	var out io.Writer = stdout
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   true,
		}
		out = io.MultiWriter(stdout, rotator)
	}
	l.SetOutput(out)

	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	// Route stray stdlib log calls (net/http server errors) through logrus.
	log.SetFlags(0)
	log.SetOutput(l.WriterLevel(logrus.WarnLevel))
}

// Gorm returns a gorm logger writing through l. Verbose logs every statement.
func Gorm(l *logrus.Logger, verbose bool) gormlogger.Interface {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}
	return gormlogger.New(l, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
