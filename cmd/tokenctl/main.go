// tokenctl mints, verifies and inspects tokens from the command line.
//
// Settings come from TOKEN_SECRET, TOKEN_SECRETS, TOKEN_TIMEOUT and
// TOKEN_HASH (optionally loaded from --env-file) and can be overridden with
// flags. Results go to stdout, diagnostics to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitUsage        = 2
	exitInvalidToken = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	env := &environment{stdin: stdin, stdout: stdout, stderr: stderr}

	var err error
	switch sub := args[0]; sub {
	case "mint":
		err = runMint(env, args[1:])
	case "parse":
		err = runParse(env, args[1:])
	case "derive":
		err = runDerive(env, args[1:])
	case "keygen":
		err = runKeygen(env, args[1:])
	case "-h", "--help", "help":
		printUsage(stdout)
		return exitOK
	default:
		printUsage(stderr)
		fmt.Fprintf(stderr, "error: unknown subcommand %q\n", sub)
		return exitUsage
	}

	if err == nil {
		return exitOK
	}
	var coded *exitError
	if errors.As(err, &coded) {
		if coded.err != nil {
			fmt.Fprintf(stderr, "error: %v\n", coded.err)
		}
		return coded.code
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitFailure
}

type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: tokenctl <subcommand> [flags]

Subcommands:
  mint     Create a signed token from claims
  parse    Verify a token and print its claims (JSON or YAML)
  derive   Print the derived secret of a token
  keygen   Print a random master secret

Environment:
  TOKEN_SECRET    master secret (default: random per process)
  TOKEN_SECRETS   comma separated older secrets accepted by parse and derive
  TOKEN_TIMEOUT   token lifetime (default 5m)
  TOKEN_HASH      hash algorithm (default sha256)

Run 'tokenctl <subcommand> --help' for subcommand flags.
`)
}
