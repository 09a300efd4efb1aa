// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for notlisp.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/notlisp/internal/system/history"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/interface/literal"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/engine"
	"github.com/michaelmacinnis/notlisp/pkg/reader/parser"
)

const (
	continuation = "... "
	prompt       = "> "
)

type lineReader interface {
	AppendHistory(line string)
	Prompt(p string) (string, error)
}

// Run launches the REPL. Expressions are evaluated in e and the value of
// each top-level expression is printed. Run returns when input ends.
func Run(e *env.T) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	if err := history.Load(cli.ReadHistory); err != nil {
		slog.Warn("history not loaded", slog.String("error", err.Error()))
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	loop(&terminal{cli, cooked, uncooked}, e, os.Stdout, os.Stderr)

	if err := history.Save(cli.WriteHistory); err != nil {
		slog.Warn("history not saved", slog.String("error", err.Error()))
	}

	return nil
}

func completer(e *env.T) liner.WordCompleter {
	return func(line string, pos int) (head string, cs []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexAny(head, " \t\n()\"") + 1
		word := head[start:]
		head = head[:start]

		for _, name := range e.Names() {
			if strings.HasPrefix(name, word) {
				cs = append(cs, name)
			}
		}

		return
	}
}

// loop evaluates input until it ends. After an error, or when the user
// aborts a line, it starts over with a new interpreter.
func loop(l lineReader, e *env.T, out, diag io.Writer) {
	for {
		t := engine.New(e, nil)
		t.Notify(func(c cell.I) {
			fmt.Fprintln(out, literal.String(c))
		})

		in := &input{reader: l}
		p := parser.New(in, t)

		in.more = func() bool {
			return t.Depth() > 0 || p.Pending()
		}

		err := p.Parse()

		switch {
		case err == nil:
			return
		case errors.Is(err, liner.ErrPromptAborted):
		default:
			fmt.Fprintln(diag, err)
		}
	}
}

// input is an io.ByteReader that prompts for a line each time it is empty.
// When more returns true the next line continues an expression.
type input struct {
	buf    []byte
	more   func() bool
	reader lineReader
}

func (i *input) ReadByte() (byte, error) {
	for len(i.buf) == 0 {
		p := prompt
		if i.more() {
			p = continuation
		}

		line, err := i.reader.Prompt(p)
		if err != nil {
			return 0, err
		}

		if strings.TrimSpace(line) != "" {
			i.reader.AppendHistory(line)
		}

		i.buf = append([]byte(line), '\n')
	}

	b := i.buf[0]
	i.buf = i.buf[1:]

	return b, nil
}

// terminal switches to the line editor's terminal mode while prompting.
type terminal struct {
	*liner.State
	cooked   liner.ModeApplier
	uncooked liner.ModeApplier
}

func (t *terminal) Prompt(p string) (string, error) {
	if err := t.uncooked.ApplyMode(); err != nil {
		return "", err
	}

	line, err := t.State.Prompt(p)

	if merr := t.cooked.ApplyMode(); merr != nil && err == nil {
		err = merr
	}

	return line, err
}
