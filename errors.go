package main

import (
	"errors"
	"fmt"
)

// ErrStackUnderflow reports a pop from the empty operand stack. It is fatal:
// nothing between the failing operation and the top-level driver recovers
// from it.
var ErrStackUnderflow = errors.New("operand stack is empty")

// UnknownNameError reports invocation of a name absent from the dictionary.
// The dictionary and operand stack are untouched when it is returned.
type UnknownNameError struct {
	Name string
}

func (e UnknownNameError) Error() string { return fmt.Sprintf("unknown word %q", e.Name) }

// TypeError reports an operation receiving the wrong operand variant, e.g.
// arithmetic on text. There is no implicit coercion between variants.
type TypeError struct {
	Want ValueKind
	Got  ValueKind
}

func (e TypeError) Error() string {
	return fmt.Sprintf("type mismatch: want %v, got %v", e.Want, e.Got)
}
