package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides component-tagged structured logging
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps LOG_LEVEL values onto zerolog levels. Empty selects info.
func ParseLevel(value string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", value)
	}
}

// NoOp discards everything
type NoOp struct{}

func (NoOp) Debug(component, message string, fields map[string]interface{})   {}
func (NoOp) Info(component, message string, fields map[string]interface{})    {}
func (NoOp) Warning(component, message string, fields map[string]interface{}) {}
func (NoOp) Error(component string, err error, fields map[string]interface{}) {}
