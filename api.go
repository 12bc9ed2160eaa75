package main

import (
	"context"
	"io"

	"github.com/kotoba-lang/kotoba/internal/panicerr"
	"github.com/kotoba-lang/kotoba/internal/source"
)

// New builds a Machine with the built-in words already seeded.
func New(opts ...MachineOption) *Machine {
	m := &Machine{dict: make(map[string]definition)}
	defaultOptions.apply(m)
	MachineOptions(opts...).apply(m)
	registerBuiltins(m)
	return m
}

// Run evaluates one named source buffer against the machine. Any panic out
// of a native operation is recovered into the returned error; interpreter
// failures (unknown word, empty stack, type mismatch) come back as typed
// error values.
func (m *Machine) Run(ctx context.Context, buf source.Buffer) error {
	return panicerr.Recover(buf.Name, func() error {
		return m.eval(ctx, buf)
	})
}

// RunString is a convenience for inline program text.
func (m *Machine) RunString(ctx context.Context, text string) error {
	return m.Run(ctx, source.Text("<inline>", text))
}

func WithOutput(w io.Writer) MachineOption { return withOutput(w) }
func WithTee(w io.Writer) MachineOption    { return teeOption{w} }

// WithLoadPath sets the directories searched by 読み込む and the CLI.
func WithLoadPath(dirs ...string) MachineOption { return loadPathOption(dirs) }

// WithMaxDepth bounds nested Execute calls; zero means unbounded.
func WithMaxDepth(limit int) MachineOption { return maxDepthOption(limit) }

func WithLogf(logfn func(mess string, args ...interface{})) MachineOption {
	return logfnOption(logfn)
}
