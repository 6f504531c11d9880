// Package logger wraps op/go-logging with a single console backend for the
// feed service.
package logger

import (
	"os"
	"strings"

	"github.com/op/go-logging"
)

const timeFormat = "2006/01/02 15:04:05"

var log *logging.Logger

func init() {
	// Usable before Init for package init paths and tests.
	Init("info")
}

// Init configures the console backend at the given level. Unknown levels
// fall back to info.
func Init(level string) {
	l := logging.MustGetLogger("feed-service")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{time:` + timeFormat + `} %{level} - %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(parseLevel(level), "feed-service")

	l.SetBackend(leveled)
	log = l
}

func parseLevel(level string) logging.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logging.DEBUG
	case "warning", "warn":
		return logging.WARNING
	case "error":
		return logging.ERROR
	default:
		return logging.INFO
	}
}

func Debug(args ...any)                 { log.Debug(args...) }
func Debugf(format string, args ...any) { log.Debugf(format, args...) }
func Info(args ...any)                  { log.Info(args...) }
func Infof(format string, args ...any)  { log.Infof(format, args...) }
func Warning(args ...any)               { log.Warning(args...) }
func Warningf(format string, args ...any) {
	log.Warningf(format, args...)
}
func Error(args ...any)                 { log.Error(args...) }
func Errorf(format string, args ...any) { log.Errorf(format, args...) }
