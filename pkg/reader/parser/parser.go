// Released under an MIT license. See LICENSE.

// Package parser provides a streaming parser for notlisp s-expressions.
//
// The parser pulls one byte at a time from its source and hands it to the
// current state. A state either consumes the byte or asks for it to be
// processed again, usually after switching to another state. Structural
// events are delivered to a Handler as soon as they are recognized, so a
// handler can evaluate a list the moment it is closed.
package parser

import (
	"bufio"
	"fmt"
	"io"

	"github.com/michaelmacinnis/notlisp/pkg/common/errs"
)

// Handler receives the structural events recognized by the parser.
// An error returned by any method aborts parsing.
type Handler interface {
	ListBegin() error
	ListEnd() error
	Comment(text string) error
	String(text string) error
	Atom(text string) error
	EOF() error
}

// Error is a failure positioned at a byte offset in the source.
type Error struct {
	Offset int64 // Bytes consumed when the failure occurred.
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("s-exp error @ %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// T holds the state of the parser.
type T struct {
	data    []byte        // Text of the current string, atom or comment.
	digits  int           // Hex digits collected for the current escape.
	handler Handler       // Receiver of structural events.
	hex     int           // Value of the hex digits collected so far.
	level   int           // Lists opened but not yet closed.
	offset  int64         // Bytes consumed.
	saved   []state       // States interrupted by an escape.
	source  io.ByteReader // Where bytes come from.
	state   state         // Current state.
}

type parser = T

type state int

const (
	top state = iota
	inComment
	inString
	inAtom
	inEscape
	inEscapeHex
)

type action int

const (
	skip action = iota // Consume the character and advance.
	stay               // Process the same character again.
)

const eos = -1

// New creates a new parser reading from src and reporting to h.
func New(src io.ByteReader, h Handler) *T {
	return &parser{handler: h, source: src}
}

// Parse parses all of src, reporting to h.
func Parse(src io.Reader, h Handler) error {
	br, ok := src.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(src)
	}

	return New(br, h).Parse()
}

// Level returns the number of lists opened but not yet closed.
func (p *parser) Level() int {
	return p.level
}

// Pending returns true if the parser is part way through a string, atom,
// comment or escape.
func (p *parser) Pending() bool {
	return p.state != top
}

// Offset returns the number of bytes consumed so far.
func (p *parser) Offset() int64 {
	return p.offset
}

// Parse consumes the source until it is exhausted or an error occurs.
// The handler's EOF method is called once the end of the stream is reached.
func (p *parser) Parse() error {
	p.use(top)

	for {
		c, err := p.next()
		if err != nil {
			return p.fail(err)
		}

		for {
			a, err := p.step(c)
			if err != nil {
				return p.fail(err)
			}

			if a == skip {
				break
			}
		}

		if c == eos {
			break
		}
	}

	if err := p.handler.EOF(); err != nil {
		return p.fail(err)
	}

	return nil
}

func (p *parser) emit(event func(string) error) error {
	return event(string(p.data))
}

func (p *parser) escape() action {
	p.saved = append(p.saved, p.state)
	p.state = inEscape

	return skip
}

func (p *parser) fail(err error) error {
	return &Error{Offset: p.offset, Err: err}
}

func (p *parser) next() (int, error) {
	b, err := p.source.ReadByte()
	if err == io.EOF {
		return eos, nil
	} else if err != nil {
		return eos, err
	}

	p.offset++

	return int(b), nil
}

func (p *parser) resume() {
	n := len(p.saved) - 1
	p.state = p.saved[n]
	p.saved = p.saved[:n]
}

func (p *parser) step(c int) (action, error) {
	switch p.state {
	case top:
		return p.top(c)
	case inComment:
		return p.inComment(c)
	case inString:
		return p.inString(c)
	case inAtom:
		return p.inAtom(c)
	case inEscape:
		return p.inEscape(c)
	case inEscapeHex:
		return p.inEscapeHex(c)
	}

	panic("unknown parser state")
}

func (p *parser) use(s state) {
	p.data = p.data[:0]
	p.state = s
}

// Parser states.

func (p *parser) inAtom(c int) (action, error) {
	switch {
	case c == eos, c == '(', c == ')', isSpace(c):
		err := p.emit(p.handler.Atom)
		p.use(top)

		return stay, err
	case c == '\\':
		return p.escape(), nil
	}

	p.data = append(p.data, byte(c))

	return skip, nil
}

func (p *parser) inComment(c int) (action, error) {
	if c == '\n' || c == eos {
		err := p.emit(p.handler.Comment)
		p.use(top)

		return skip, err
	}

	p.data = append(p.data, byte(c))

	return skip, nil
}

func (p *parser) inEscape(c int) (action, error) {
	switch c {
	case eos:
		return skip, errs.Parse("expected escaped symbol, got end of stream")
	case 'x':
		p.digits = 0
		p.hex = 0
		p.state = inEscapeHex

		return skip, nil
	}

	p.data = append(p.data, unescape(byte(c)))
	p.resume()

	return skip, nil
}

func (p *parser) inEscapeHex(c int) (action, error) {
	if n := unhex(c); n >= 0 {
		p.hex = p.hex<<4 | n
		p.digits++

		if p.digits < 2 {
			return skip, nil
		}

		p.data = append(p.data, byte(p.hex))
		p.resume()

		return skip, nil
	}

	if p.digits == 0 {
		return skip, errs.Parse("escaped hex is empty")
	}

	p.data = append(p.data, byte(p.hex))
	p.resume()

	return stay, nil
}

func (p *parser) inString(c int) (action, error) {
	switch c {
	case eos:
		return skip, errs.Parse("unterminated string")
	case '"':
		err := p.emit(p.handler.String)
		p.use(top)

		return skip, err
	case '\\':
		return p.escape(), nil
	}

	p.data = append(p.data, byte(c))

	return skip, nil
}

func (p *parser) top(c int) (action, error) {
	switch {
	case c == eos:
		return skip, nil
	case c == '(':
		p.level++

		return skip, p.handler.ListBegin()
	case c == ')':
		if p.level == 0 {
			return skip, errs.Parse("unexpected ')'")
		}

		p.level--

		return skip, p.handler.ListEnd()
	case c == ';':
		p.use(inComment)
	case c == '"':
		p.use(inString)
	case isSpace(c):
	default:
		p.use(inAtom)

		return stay, nil
	}

	return skip, nil
}

// Helper functions.

func isSpace(c int) bool {
	switch c {
	case ' ', '\f', '\n', '\r', '\t', '\v':
		return true
	}

	return false
}

func unescape(b byte) byte {
	switch b {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	}

	return b
}

func unhex(c int) int {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}

	return -1
}
