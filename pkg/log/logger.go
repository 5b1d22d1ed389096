// Package log provides named, leveled loggers shared by the renderer packages.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level controls which messages reach the sink.
type Level int

// Levels accepted by SetLevel, from most to least verbose.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelNames = map[Level]string{
	Debug:   "debug",
	Info:    "info",
	Notice:  "notice",
	Warning: "warning",
	Error:   "error",
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	currentLevel   = Notice
)

// Logger is the subset of go-logging used by the renderer.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a module such as "renderer" or "scene".
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all loggers to w, keeping the current level.
func SetSink(w io.Writer) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(formatted)
	logging.SetBackend(leveledBackend)
	SetLevel(currentLevel)
}

// SetLevel sets the verbosity of every module.
func SetLevel(level Level) {
	var backendLevel logging.Level
	switch level {
	case Debug:
		backendLevel = logging.DEBUG
	case Info:
		backendLevel = logging.INFO
	case Warning:
		backendLevel = logging.WARNING
	case Error:
		backendLevel = logging.ERROR
	default:
		level = Notice
		backendLevel = logging.NOTICE
	}

	currentLevel = level
	leveledBackend.SetLevel(backendLevel, "")
}

// GetLevel returns the level last passed to SetLevel.
func GetLevel() Level {
	return currentLevel
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for level, levelName := range levelNames {
		if levelName == name {
			return level, nil
		}
	}
	return Notice, fmt.Errorf("log: unknown level %q", name)
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

func init() {
	SetSink(os.Stdout)
}
