package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-scoped structured logger used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &ZerologAdapter{logger: zerolog.Nop()}
}
