package logshim

import (
	"fmt"
	"io"
	"os"
)

const errorPrefix = "error: "

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

type flusher interface {
	Flush() error
}

// Die writes msg to standard error, prefixed with "error: " and followed by a newline, then exits with status 1.
// The message is not formatted.
func Die(msg string) {
	fatal(msg)
}

// Dief is like Die, but formats the message with fmt.Sprintf first.
func Dief(format string, args ...any) {
	fatal(fmt.Sprintf(format, args...))
}

func fatal(msg string) {
	// Single write, so the prefix can't be separated from the message by another writer.
	_, _ = io.WriteString(stderr, errorPrefix+msg+"\n")
	if f, ok := stderr.(flusher); ok {
		_ = f.Flush()
	}
	exit(1)
}
