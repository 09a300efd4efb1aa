// Released under an MIT license. See LICENSE.

// Package history persists the REPL's history between sessions.
package history

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

const name = ".notlisp_history"

var errNoHome = errors.New("history: HOME is not set")

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()

	if err = lock(f, false); err != nil {
		return err
	}

	_, err = read(f)

	return err
}

// Path returns the path of the history file.
func Path() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", errNoHome
	}

	return filepath.Join(home, name), nil
}

// Save replaces the contents of the history file with what write writes.
func Save(write func(w io.Writer) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	// Truncate only once the lock is held.
	if err = lock(f, true); err == nil {
		err = f.Truncate(0)
	}

	if err == nil {
		_, err = write(f)
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}
