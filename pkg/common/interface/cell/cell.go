// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all notlisp expressions.
package cell

// I (cell) is the basic unit of storage in notlisp.
type I interface {
	Equal(c I) bool
	Name() string
}
