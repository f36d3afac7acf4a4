package logshim

import (
	"fmt"
	"io"
	"os"
)

var stdout io.Writer = os.Stdout

// Tee writes the formatted message to standard output with no prefix or suffix.
// The return values are those of the underlying formatted write.
func Tee(format string, args ...any) (int, error) {
	return fmt.Fprintf(stdout, format, args...)
}
