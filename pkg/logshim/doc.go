/*
Package logshim provides the two output primitives a native inference build expects to find at link time.

# Tee printing:

Tee forwards printf formatted text to standard output, exactly as formatted.
No prefix or line terminator is added, and write failures are not reported beyond the returned values, which callers usually ignore.

# Fatal errors:

Die and Dief report an unrecoverable condition and end the process.
The message is written to standard error as "error: " followed by the message and a line terminator, then the process exits with status 1.
Neither function returns to its caller, and no deferred functions run.

Die writes its message literally, so a '%' in the message is not treated as a formatting directive.
Use Dief when the message needs formatting.

# General guidelines:
  - Only call Die or Dief for conditions that cannot be handled. Return an error for everything else.
  - Exit status 1 is the only status produced by this package.
  - There is no locking. Concurrent Tee calls may interleave as the underlying stream allows.
*/
package logshim
