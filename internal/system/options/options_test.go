package options

import (
	"testing"
)

func TestCommand(t *testing.T) {
	parse([]string{"-d", "-c", "(+ 1 2)"}, true)

	if Command() != "(+ 1 2)" {
		t.Fatalf("command %q", Command())
	}

	if !Debug() {
		t.Fatal("expected debug")
	}

	if Interactive() || Stdin() {
		t.Fatal("a command is neither interactive nor read from stdin")
	}
}

func TestScripts(t *testing.T) {
	parse([]string{"-e", "env.yaml", "a.nl", "b.nl"}, true)

	if s := Scripts(); len(s) != 2 || s[0] != "a.nl" || s[1] != "b.nl" {
		t.Fatalf("scripts %v", s)
	}

	if Env() != "env.yaml" {
		t.Fatalf("env %q", Env())
	}

	if Interactive() || Debug() {
		t.Fatal("unexpected flags")
	}
}

func TestInteractive(t *testing.T) {
	for _, c := range []struct {
		argv     []string
		terminal bool
		expected bool
	}{
		{nil, true, true},
		{nil, false, false},
		{[]string{"-i"}, true, false},
		{[]string{"-i"}, false, true},
		{[]string{"-s"}, true, true},
	} {
		parse(c.argv, c.terminal)

		if Interactive() != c.expected {
			t.Fatalf("%v (terminal %v): interactive %v, expected %v",
				c.argv, c.terminal, Interactive(), c.expected)
		}

		if !Stdin() {
			t.Fatalf("%v: expected stdin", c.argv)
		}
	}
}

func TestVersion(t *testing.T) {
	parse([]string{"-v"}, false)

	if !Version() {
		t.Fatal("expected version")
	}
}
