package parser

import (
	"strings"
	"testing"
)

func TestQuoteRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	for _, s := range []string{
		"",
		"plain",
		"\n\t\r\a\b\v",
		`"quoted" \ backslash`,
		"\x00\x1f\x7f\xff",
		"héllo",
		string(all),
	} {
		q := Quote(s)

		r := &recorder{}
		if err := Parse(strings.NewReader(q), r); err != nil {
			t.Fatalf("parsing %s: %v", q, err)
		}

		if len(r.events) != 2 || r.events[0].kind != "string" {
			t.Fatalf("parsing %s: unexpected events %v", q, r.events)
		}

		if r.events[0].text != s {
			t.Fatalf("%q quoted as %s reads back as %q", s, q, r.events[0].text)
		}
	}
}

func TestQuoteEscapes(t *testing.T) {
	for s, expected := range map[string]string{
		"a\nb":     `"a\nb"`,
		`"`:        `"\""`,
		"\x01":     `"\x01"`,
		"\x7f":     `"\x7f"`,
		"\f":       `"\x0c"`,
		"héllo":    `"héllo"`,
		"\x80\xff": "\"\x80\xff\"",
	} {
		if q := Quote(s); q != expected {
			t.Fatalf("Quote(%q) = %s, expected %s", s, q, expected)
		}
	}
}

func TestAtomRoundTrip(t *testing.T) {
	all := make([]byte, 255)
	for i := range all {
		all[i] = byte(i + 1)
	}

	for _, s := range []string{
		"set-mode",
		"a b",
		"(x)",
		`a\b`,
		";c",
		`"q"`,
		"x;y\"z",
		"tab\there\n",
		"\x00\x7f\xff",
		"\x01a",
		string(all),
	} {
		a := Atom(s)

		r := &recorder{}
		if err := Parse(strings.NewReader(a), r); err != nil {
			t.Fatalf("parsing %s: %v", a, err)
		}

		if len(r.events) != 2 || r.events[0] != (event{"atom", s}) {
			t.Fatalf("%q written as %s reads back as %v", s, a, r.events)
		}
	}
}

func TestAtomEscapes(t *testing.T) {
	for s, expected := range map[string]string{
		"plain": "plain",
		"a b":   `a\ b`,
		"f(x)":  `f\(x\)`,
		";x;":   `\;x;`,
		`"x"`:   `\"x"`,
		"a\nb":  `a\nb`,
	} {
		if a := Atom(s); a != expected {
			t.Fatalf("Atom(%q) = %s, expected %s", s, a, expected)
		}
	}
}
