// Released under an MIT license. See LICENSE.

/*
Notlisp evaluates notlisp, a small language of S-expressions used for
configuration and simple call-style communication:

	(set-mode :fast (+ 1 2))

Each top-level expression is evaluated as soon as it is complete and its
value is printed on its own line. Lists are function calls. Symbols name
values in the environment. Numbers, strings, keywords and nil evaluate to
themselves.

Constants can be added to the environment from a YAML file with --env.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/michaelmacinnis/notlisp/internal/system/config"
	"github.com/michaelmacinnis/notlisp/internal/system/options"
	"github.com/michaelmacinnis/notlisp/internal/ui"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/engine/commands"
	"github.com/michaelmacinnis/notlisp/pkg/reader"
)

const version = "0.1.0"

func main() {
	options.Parse()

	if options.Version() {
		fmt.Println("notlisp", version)

		return
	}

	level := slog.LevelInfo
	if options.Debug() {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	e, err := environment(options.Env())
	if err == nil {
		err = run(e)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// environment returns an environment with the standard functions and the
// constants defined in the YAML file at path, if there is one.
func environment(path string) (*env.T, error) {
	e := env.New()
	commands.Install(e)

	if path == "" {
		return e, nil
	}

	bindings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	for _, b := range bindings {
		e.Define(b.Name, b.Value)
	}

	slog.Debug("environment loaded",
		slog.String("path", path),
		slog.Int("bindings", len(bindings)))

	return e, nil
}

func evaluate(r io.Reader, e *env.T, w io.Writer) error {
	_, err := reader.Evaluate(r, e, func(c cell.I) {
		fmt.Fprintln(w, literal.String(c))
	})

	return err
}

func run(e *env.T) error {
	switch {
	case options.Command() != "":
		return evaluate(strings.NewReader(options.Command()), e, os.Stdout)

	case len(options.Scripts()) > 0:
		for _, path := range options.Scripts() {
			if err := source(path, e, os.Stdout); err != nil {
				return err
			}
		}

	case options.Interactive():
		return ui.Run(e)

	case options.Stdin():
		return evaluate(os.Stdin, e, os.Stdout)
	}

	return nil
}

func source(path string, e *env.T, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = evaluate(f, e, w); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
