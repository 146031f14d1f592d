// Package log provides the process-wide logger used by the application
// surfaces. It wraps hclog so that call sites stay printf-shaped.
package log

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var (
	logger hclog.Logger
	once   sync.Once
)

// Init configures the process logger. The level is taken from the LOG_LEVEL
// environment variable and defaults to info.
func Init() {
	once.Do(func() {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "bpml",
			Level: hclog.LevelFromString(levelFromEnv()),
		})
		hclog.SetDefault(logger)
	})
}

func levelFromEnv() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}

func get() hclog.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

func Debug(format string, args ...any) {
	get().Debug(fmt.Sprintf(format, args...))
}

func Debugf(_ context.Context, format string, args ...any) {
	get().Debug(fmt.Sprintf(format, args...))
}

func Info(format string, args ...any) {
	get().Info(fmt.Sprintf(format, args...))
}

func Infof(_ context.Context, format string, args ...any) {
	get().Info(fmt.Sprintf(format, args...))
}

func Warn(format string, args ...any) {
	get().Warn(fmt.Sprintf(format, args...))
}

func Error(format string, args ...any) {
	get().Error(fmt.Sprintf(format, args...))
}
