package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotCommand_words(t *testing.T) {
	m := New()
	require.NoError(t, m.RunString(context.Background(), "「倍」とは 2 掛ける です"))

	var out bytes.Buffer
	quit := runDotCommand(m, &out, ".words")
	assert.False(t, quit)
	assert.Contains(t, out.String(), "倍")
	assert.Contains(t, out.String(), "compiled")
	assert.Contains(t, out.String(), "書く")
	assert.Contains(t, out.String(), "native")
}

func TestDotCommand_stack(t *testing.T) {
	m := New()
	require.NoError(t, m.RunString(context.Background(), "1 「こんにちは」"))

	var out bytes.Buffer
	runDotCommand(m, &out, ".stack")
	assert.Contains(t, out.String(), "こんにちは")
	assert.Contains(t, out.String(), "text")
	assert.Contains(t, out.String(), "integer")
}

func TestDotCommand_stackEmpty(t *testing.T) {
	var out bytes.Buffer
	runDotCommand(New(), &out, ".stack")
	assert.Contains(t, out.String(), "stack empty")
}

func TestDotCommand_quit(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, runDotCommand(New(), &out, ".quit"))
	assert.True(t, runDotCommand(New(), &out, ".exit"))
	assert.False(t, runDotCommand(New(), &out, ".help"))
	assert.False(t, runDotCommand(New(), &out, ".bogus"))
	assert.Contains(t, out.String(), ".bogus")
}

func TestWordCompleter_listsDefinitions(t *testing.T) {
	m := New()
	require.NoError(t, m.RunString(context.Background(), "「倍」とは 2 掛ける です"))
	assert.NotNil(t, newWordCompleter(m))
	assert.Contains(t, m.Words(), "倍")
	assert.Contains(t, m.Words(), "読み込む")
}
