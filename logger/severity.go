package logger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Severity selects the color a message is printed with.
type Severity string

const (
	// Normal prints with the terminal's default color.
	Normal Severity = "normal"
	// Error prints in red.
	Error Severity = "error"
	// Positive prints in green.
	Positive Severity = "positive"
	// Warning prints in yellow.
	Warning Severity = "warning"
)

// ErrUnknownSeverity is returned by ParseSeverity for names outside the four severities.
var ErrUnknownSeverity = errors.New("unknown severity")

// colorCodes is read-only after init.
var colorCodes = map[Severity]string{
	Normal:   sgr(color.Reset),
	Error:    sgr(color.FgRed),
	Positive: sgr(color.FgGreen),
	Warning:  sgr(color.FgYellow),
}

func sgr(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

// Severities returns all supported severities.
func Severities() []Severity {
	return []Severity{Normal, Error, Positive, Warning}
}

func (s Severity) String() string {
	return string(s)
}

// Valid reports whether s is one of the four defined severities.
func (s Severity) Valid() bool {
	_, ok := colorCodes[s]
	return ok
}

// ColorCode returns the escape sequence printed in front of messages of severity s.
// The empty severity resolves to Normal. ok is false for unrecognized severities.
func ColorCode(s Severity) (code string, ok bool) {
	if s == "" {
		s = Normal
	}
	code, ok = colorCodes[s]
	return code, ok
}

// ParseSeverity parses a severity name, ignoring case and surrounding spaces.
// Empty input yields Normal.
func ParseSeverity(name string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(name)))
	if s == "" {
		return Normal, nil
	}
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
	}
	return s, nil
}
