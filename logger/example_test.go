package logger_test

import (
	"errors"
	"os"

	"github.com/mordilloSan/go-colorlog/logger"
)

// This example prints one message per severity.
func ExampleLog() {
	logger.Print("starting")
	logger.Log("build ok", logger.Positive)
	logger.Log("retry", logger.Warning)
	logger.Log("disk full", logger.Error)
}

// This example attaches a value to the message as a second argument.
func ExampleLogData() {
	logger.LogData("disk full", logger.Error, map[string]int{"code": 28})
	logger.LogData("open config", logger.Warning, errors.New("permission denied"))
}

// This example writes to an explicit writer instead of standard output.
func ExampleNew() {
	l := logger.New(os.Stderr)
	l.Log("written to stderr", logger.Positive)
}

// This example parses a severity supplied on the command line.
func ExampleParseSeverity() {
	severity, err := logger.ParseSeverity("Warning")
	if err != nil {
		logger.LogData("invalid severity", logger.Error, err)
		return
	}
	logger.Log("low disk space", severity)
}
