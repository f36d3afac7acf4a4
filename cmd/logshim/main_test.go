package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliArgsEnv = "LOGSHIM_TEST_CLI_ARGS"

// runCLI runs main in a child process with the given arguments, returning its output and exit status.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, status int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(os.Args[0], "-test.run=^TestCLI$")
	cmd.Env = append(os.Environ(), cliArgsEnv+"="+strings.Join(args, "\x1f"))
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return outBuf.String(), errBuf.String(), status
}

func TestCLI(t *testing.T) {
	if raw, ok := os.LookupEnv(cliArgsEnv); ok {
		os.Args = append([]string{"logshim"}, strings.Split(raw, "\x1f")...)
		main()
		os.Exit(0)
	}

	tests := map[string]struct {
		args   []string
		stdout string
		stderr string
		status int
	}{
		"Tee": {
			args:   []string{"tee", "loaded %d tokens", "128"},
			stdout: "loaded 128 tokens",
		},
		"Tee newline": {
			args:   []string{"-n", "tee", "loaded %d tokens", "128"},
			stdout: "loaded 128 tokens\n",
		},
		"Die": {
			args:   []string{"die", "out of memory"},
			stderr: "error: out of memory\n",
			status: 1,
		},
		"Die literal": {
			args:   []string{"die", "100%d"},
			stderr: "error: 100%d\n",
			status: 1,
		},
		"Die fmt": {
			args:   []string{"die-fmt", "failed at %s:%d", "init", "42"},
			stderr: "error: failed at init:42\n",
			status: 1,
		},
		"Unknown command": {
			args:   []string{"explode"},
			stderr: "error: unknown command \"explode\"\n",
			status: 1,
		},
		"Die missing message": {
			args:   []string{"die"},
			stderr: "error: die requires exactly one MESSAGE argument\n",
			status: 1,
		},
		"Bad argument": {
			args:   []string{"tee", "%d", "lots"},
			stderr: "error: invalid arguments for tee: invalid integer \"lots\" for %d: strconv.ParseInt: parsing \"lots\": invalid syntax\n",
			status: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, status := runCLI(t, tc.args...)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.stdout, stdout)
			assert.Equal(t, tc.stderr, stderr)
		})
	}
}

func TestCLI_Help(t *testing.T) {
	stdout, stderr, status := runCLI(t, "-h")
	assert.Equal(t, 0, status)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "USAGE:  logshim [FLAGS] COMMAND ARGS...")
	assert.Contains(t, stdout, `so "%d" expects an integer`)
	assert.Contains(t, stdout, "--newline")
}
