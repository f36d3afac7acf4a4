package internal

import (
	"strings"

	"github.com/saylorsolutions/logshim/pkg/logshim"
)

// Fatal reports msg through the logshim fatal path and exits with code 1.
// The message is only formatted when args are given.
func Fatal(msg string, args ...any) {
	if len(args) == 0 {
		logshim.Die(msg)
		return
	}
	logshim.Dief(msg, args...)
}

// Usage will emit the given text to stdout, ensuring it ends with a newline.
func Usage(text string, args ...any) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = logshim.Tee(text, args...)
}
