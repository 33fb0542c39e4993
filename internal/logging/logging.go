// Package logging provides the engine-wide structured logger.
package logging

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

func logger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "texlayout",
		})
		if os.Getenv("TEXLAYOUT_DEBUG") != "" {
			singleton.SetLevel(log.DebugLevel)
		}
	})
	return singleton
}

// Debug logs a debug message with structured key/value pairs.
func Debug(msg string, kv ...interface{}) {
	logger().Debug(msg, kv...)
}

// Warn logs a warning with structured key/value pairs.
func Warn(msg string, kv ...interface{}) {
	logger().Warn(msg, kv...)
}
