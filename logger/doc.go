// Package logger prints messages to standard output with a color
// prefix chosen by severity.
//
// # Severities
//
// Four severities are defined, each valued as its own name:
//
//	normal    \x1b[0m
//	error     \x1b[31m
//	positive  \x1b[32m
//	warning   \x1b[33m
//
// The code is written directly in front of the message. No reset code
// follows it, so the color stays active until the next message or until
// the terminal resets it.
//
// # Usage
//
//	logger.Print("starting")
//	logger.Log("build ok", logger.Positive)
//	logger.Log("retry", logger.Warning)
//
// Attach a value as a separate argument on the same line:
//
//	logger.LogData("disk full", logger.Error, diskErr)
//
// Use New to write to something other than standard output:
//
//	l := logger.New(&buf)
//	l.Log("done", logger.Positive)
package logger
