package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	n, err := Int(42).Int()
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	s, err := Text("こんにちは").Text()
	assert.NoError(t, err)
	assert.Equal(t, "こんにちは", s)

	_, err = Text("x").Int()
	assert.Equal(t, TypeError{Want: IntValue, Got: TextValue}, err)

	_, err = Int(1).Text()
	assert.Equal(t, TypeError{Want: TextValue, Got: IntValue}, err)

	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "-5", Int(-5).String())
	assert.Equal(t, "こんにちは", Text("こんにちは").String())
}

func TestTypeError_message(t *testing.T) {
	err := TypeError{Want: IntValue, Got: TextValue}
	assert.Equal(t, "type mismatch: want integer, got text", err.Error())
}
