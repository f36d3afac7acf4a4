package main

import (
	"os"

	"github.com/saylorsolutions/logshim/cmd/internal"
	"github.com/saylorsolutions/logshim/pkg/logshim"
	flag "github.com/spf13/pflag"
)

var version = "dev"

const usageText = `
logshim exposes the logshim output primitives to shell build steps.
tee prints formatted text to stdout exactly as formatted.
die and die-fmt print "error: " and the message to stderr, then exit with status 1.

USAGE:  logshim [FLAGS] COMMAND ARGS...

COMMANDS:
    tee FORMAT [ARG...]        Print FORMAT with ARGs substituted to stdout.
    die MESSAGE                Report MESSAGE verbatim and exit 1.
    die-fmt FORMAT [ARG...]    Report FORMAT with ARGs substituted and exit 1.

FORMAT uses printf style verbs. Each ARG is converted to suit the verb that consumes it,
so "%%d" expects an integer, "%%f" a number, "%%t" a boolean, and anything else is used as text.

FLAGS:
%s
logshim version %s
`

func main() {
	var (
		helpFlag    bool
		newlineFlag bool
	)
	flags := flag.NewFlagSet("logshim", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&newlineFlag, "newline", "n", false, "Append a newline to tee output.")
	flags.SetInterspersed(false)
	flags.Usage = func() {
		internal.Usage(usageText, flags.FlagUsages(), version)
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		internal.Fatal("error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}

	args := flags.Args()
	if len(args) == 0 {
		internal.Fatal("missing required COMMAND argument")
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "tee":
		format, values := formatArgs(cmd, args)
		if newlineFlag {
			format += "\n"
		}
		_, _ = logshim.Tee(format, values...)
	case "die":
		if len(args) != 1 {
			internal.Fatal("die requires exactly one MESSAGE argument")
		}
		logshim.Die(args[0])
	case "die-fmt":
		format, values := formatArgs(cmd, args)
		logshim.Dief(format, values...)
	default:
		internal.Fatal("unknown command %q", cmd)
	}
}

func formatArgs(cmd string, args []string) (string, []any) {
	if len(args) == 0 {
		internal.Fatal("%s requires a FORMAT argument", cmd)
	}
	values, err := convertArgs(args[0], args[1:])
	if err != nil {
		internal.Fatal("invalid arguments for %s: %v", cmd, err)
	}
	return args[0], values
}
