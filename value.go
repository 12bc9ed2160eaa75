package main

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the two operand variants.
type ValueKind uint8

const (
	IntValue ValueKind = iota
	TextValue
)

func (k ValueKind) String() string {
	switch k {
	case IntValue:
		return "integer"
	case TextValue:
		return "text"
	}
	return fmt.Sprintf("invalid<%d>", uint8(k))
}

// Value is one operand stack slot: an integer or a text string. Values are
// immutable; operations that "modify" a stack slot replace it.
type Value struct {
	kind ValueKind
	n    int
	s    string
}

// Int makes an integer Value.
func Int(n int) Value { return Value{kind: IntValue, n: n} }

// Text makes a text Value.
func Text(s string) Value { return Value{kind: TextValue, s: s} }

func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer payload, or a TypeError for a text value.
func (v Value) Int() (int, error) {
	if v.kind != IntValue {
		return 0, TypeError{Want: IntValue, Got: v.kind}
	}
	return v.n, nil
}

// Text returns the text payload, or a TypeError for an integer value.
func (v Value) Text() (string, error) {
	if v.kind != TextValue {
		return "", TypeError{Want: TextValue, Got: v.kind}
	}
	return v.s, nil
}

// String is the display form used by 書く and by diagnostics.
func (v Value) String() string {
	if v.kind == IntValue {
		return strconv.Itoa(v.n)
	}
	return v.s
}
