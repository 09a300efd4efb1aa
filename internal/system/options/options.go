// Released under an MIT license. See LICENSE.

// Package options parses the notlisp command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	envfile     string
	interactive bool
	scripts     []string
	stdin       bool
	version     bool
	usage       = `notlisp

Usage:
  notlisp [-d] [-e FILE] SCRIPT...
  notlisp [-d] [-e FILE] -c COMMAND
  notlisp [-d] [-e FILE] [-i] [-s]
  notlisp -h
  notlisp -v

Arguments:
  SCRIPT     Path to a notlisp script. Scripts are evaluated in order.

Options:
  -c, --command=COMMAND  Evaluate the specified command.
  -d, --debug            Log each function call.
  -e, --env=FILE         Define the constants in the YAML file FILE.
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read commands from stdin.
  -h, --help             Display this help.
  -v, --version          Print notlisp version.

If notlisp's stdin is a TTY, and notlisp was invoked with no scripts or
command, interactive mode is enabled. Otherwise, it is disabled.
`
)

// Command returns the text passed with -c, if any.
func Command() string {
	return command
}

// Debug returns true if debug logging was requested.
func Debug() bool {
	return debug
}

// Env returns the path of the environment file, if any.
func Env() string {
	return envfile
}

// Interactive returns true if the REPL should be run.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. On -h it prints usage and exits.
func Parse() {
	parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// Scripts returns the scripts to evaluate.
func Scripts() []string {
	return scripts
}

// Stdin returns true if commands should be read from stdin.
func Stdin() bool {
	return stdin || (command == "" && len(scripts) == 0)
}

// Version returns true if the version was requested.
func Version() bool {
	return version
}

func parse(argv []string, terminal bool) {
	// A nil argv would make docopt fall back to os.Args.
	if argv == nil {
		argv = []string{}
	}

	opts, err := docopt.ParseArgs(usage, argv, "")
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	envfile, _ = opts.String("--env")
	stdin, _ = opts.Bool("--stdin")
	version, _ = opts.Bool("--version")

	scripts, _ = opts["SCRIPT"].([]string)

	interactive = command == "" && len(scripts) == 0 && terminal

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert
}
