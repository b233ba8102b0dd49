package util

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogEdit | LogPlacement | LogWorld | LogConfig | LogIO

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogEdit LogCategory = 1 << iota
	LogPlacement
	LogWorld
	LogConfig
	LogIO
)

var categoryPrefixes = map[LogCategory]string{
	LogEdit:      "File",
	LogPlacement: "Trowel",
	LogWorld:     "World",
	LogConfig:    "Config",
	LogIO:        "IO",
}

var logger = NewLogger(os.Stderr, LogLevelInfo)

// NewLogger creates a timestamped logger writing to w.
func NewLogger(w io.Writer, lvl LogLevel) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmLevel(lvl),
	})
}

// SetLogger replaces the sink and adopts its level as the global level.
func SetLogger(l *log.Logger, lvl LogLevel) {
	logger = l
	SetLogLevel(lvl)
}

func SetLogLevel(lvl LogLevel) {
	GLOBAL_LOG_LEVEL = lvl
	logger.SetLevel(charmLevel(lvl))
}

func Logger() *log.Logger {
	return logger
}

func charmLevel(lvl LogLevel) log.Level {
	switch lvl {
	case LogLevelError:
		return log.ErrorLevel
	case LogLevelWarning:
		return log.WarnLevel
	case LogLevelDebug:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

func logf(cat LogCategory, lvl LogLevel, msg string, keyvals ...interface{}) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	l := logger.WithPrefix(categoryPrefixes[cat])
	switch lvl {
	case LogLevelError:
		l.Error(msg, keyvals...)
	case LogLevelWarning:
		l.Warn(msg, keyvals...)
	case LogLevelDebug:
		l.Debug(msg, keyvals...)
	default:
		l.Info(msg, keyvals...)
	}
}

func LogEditDebug(msg string, keyvals ...interface{}) {
	logf(LogEdit, LogLevelDebug, msg, keyvals...)
}

func LogPlacementDebug(msg string, keyvals ...interface{}) {
	logf(LogPlacement, LogLevelDebug, msg, keyvals...)
}

func LogWorldDebug(msg string, keyvals ...interface{}) {
	logf(LogWorld, LogLevelDebug, msg, keyvals...)
}

func LogConfigWarning(msg string, keyvals ...interface{}) {
	logf(LogConfig, LogLevelWarning, msg, keyvals...)
}

func LogConfigDebug(msg string, keyvals ...interface{}) {
	logf(LogConfig, LogLevelDebug, msg, keyvals...)
}

func LogIOInfo(msg string, keyvals ...interface{}) {
	logf(LogIO, LogLevelInfo, msg, keyvals...)
}
