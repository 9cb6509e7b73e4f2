package main

import (
	"os"
	"strings"

	"github.com/mordilloSan/go-colorlog/logger"
)

type diskStatus struct {
	Code int
}

// Example demonstrating go-colorlog usage.
func main() {
	// Usage: ./go-colorlog [severity message...]
	// Example: ./go-colorlog warning low disk space
	if len(os.Args) > 2 {
		severity, err := logger.ParseSeverity(os.Args[1])
		if err != nil {
			logger.LogData("invalid severity", logger.Error, err)
			os.Exit(2)
		}
		logger.Log(strings.Join(os.Args[2:], " "), severity)
		return
	}

	logger.Print("starting")
	logger.Log("build ok", logger.Positive)
	logger.Log("retry", logger.Warning)
	logger.LogData("disk full", logger.Error, diskStatus{Code: 28})
	logger.Print("done")
}
