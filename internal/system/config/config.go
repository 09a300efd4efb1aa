// Released under an MIT license. See LICENSE.

// Package config loads constants for the notlisp environment from YAML.
//
// The file is a mapping of names to values. Integers become integers,
// floating point numbers become reals, strings become strings (or keywords,
// if they start with a colon), sequences become lists and null becomes nil.
// Booleans and mappings have no notlisp equivalent and become objects.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/notlisp/pkg/common/interface/cell"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/env"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/float"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/integer"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/kwd"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/list"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/null"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/obj"
	"github.com/michaelmacinnis/notlisp/pkg/common/type/str"
)

// Load reads the bindings in the file at path, in the order they appear.
func Load(path string) ([]env.Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	bindings, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return bindings, nil
}

// Read reads bindings from r. An empty document has no bindings.
func Read(r io.Reader) ([]env.Binding, error) {
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}

		root = root.Content[0]
	}

	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, nil
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of names to values", root.Line)
	}

	bindings := make([]env.Binding, 0, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		var name string
		if err := root.Content[i].Decode(&name); err != nil {
			return nil, err
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("line %d: empty name", root.Content[i].Line)
		}

		v, err := value(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		bindings = append(bindings, env.Const(name, v))
	}

	return bindings, nil
}

func value(n *yaml.Node) (cell.I, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return value(n.Alias)

	case yaml.MappingNode:
		var m map[string]interface{}
		if err := n.Decode(&m); err != nil {
			return nil, err
		}

		return obj.New("map", m), nil

	case yaml.ScalarNode:
		return scalar(n)

	case yaml.SequenceNode:
		elements := make([]cell.I, 0, len(n.Content))

		for _, e := range n.Content {
			v, err := value(e)
			if err != nil {
				return nil, err
			}

			elements = append(elements, v)
		}

		return list.New(elements...), nil
	}

	return nil, fmt.Errorf("line %d: unexpected node", n.Line)
}

func scalar(n *yaml.Node) (cell.I, error) {
	switch n.ShortTag() {
	case "!!null":
		return null.Nil, nil

	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}

		return obj.New("bool", b), nil

	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, err
		}

		return integer.New(i), nil

	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}

		return float.New(f), nil
	}

	if strings.HasPrefix(n.Value, ":") {
		return kwd.New(n.Value[1:]), nil
	}

	return str.New(n.Value), nil
}
