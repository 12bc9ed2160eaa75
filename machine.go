package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/kotoba-lang/kotoba/internal/flushio"
	"github.com/kotoba-lang/kotoba/internal/source"
)

// The two closing keywords that end a compile unit.
func isUnitClose(name string) bool { return name == "です" || name == "おわり" }

// A definition is what a dictionary name resolves to: a native operation
// supplied by the host, or a procedure compiled by the running program.
type definition interface {
	run(m *Machine) error
}

type nativeWord struct {
	name string
	fn   func(m *Machine) error
}

func (w nativeWord) run(m *Machine) error { return w.fn(m) }

// compiledWord replays its recorded tokens through RunToken in order, with
// the same semantics as if they had been typed inline.
type compiledWord struct {
	name string
	body []Token
}

func (w compiledWord) run(m *Machine) error {
	for _, tok := range w.body {
		if err := m.interrupted(); err != nil {
			return err
		}
		if err := m.RunToken(tok); err != nil {
			return err
		}
	}
	return nil
}

// Machine owns the dictionary, the operand stack, and the compile-mode
// state. It is single-owner mutable state: one logical thread of control,
// re-entrant only through explicit nested Execute/RunToken calls.
type Machine struct {
	dict      map[string]definition
	stack     []Value
	compile   []Token
	depth     int
	declarers map[string]struct{}

	out   flushio.WriteFlusher
	paths []string
	ctx   context.Context

	calls   int
	maxCall int

	logfn func(mess string, args ...interface{})
}

func (m *Machine) logf(mess string, args ...interface{}) {
	if m.logfn != nil {
		m.logfn(mess, args...)
	}
}

func (m *Machine) interrupted() error {
	if m.ctx != nil {
		return m.ctx.Err()
	}
	return nil
}

//// Operand stack

// Push appends a value to the operand stack.
func (m *Machine) Push(v Value) { m.stack = append(m.stack, v) }

// Pop removes and returns the top of the operand stack.
func (m *Machine) Pop() (Value, error) {
	if len(m.stack) == 0 {
		return Value{}, ErrStackUnderflow
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

func (m *Machine) peek() (Value, error) {
	if len(m.stack) == 0 {
		return Value{}, ErrStackUnderflow
	}
	return m.stack[len(m.stack)-1], nil
}

func (m *Machine) bottom() (Value, error) {
	if len(m.stack) == 0 {
		return Value{}, ErrStackUnderflow
	}
	return m.stack[0], nil
}

func (m *Machine) popInt() (int, error) {
	v, err := m.Pop()
	if err != nil {
		return 0, err
	}
	return v.Int()
}

func (m *Machine) popText() (string, error) {
	v, err := m.Pop()
	if err != nil {
		return "", err
	}
	return v.Text()
}

// Depth is the current operand stack depth.
func (m *Machine) Depth() int { return len(m.stack) }

// Stack returns a copy of the operand stack, bottom first.
func (m *Machine) Stack() []Value { return append([]Value(nil), m.stack...) }

//// Dictionary

// Define registers a native operation under name, replacing any prior
// definition.
func (m *Machine) Define(name string, fn func(m *Machine) error) {
	m.dict[name] = nativeWord{name: name, fn: fn}
}

// Defined reports whether name is in the dictionary.
func (m *Machine) Defined(name string) bool {
	_, ok := m.dict[name]
	return ok
}

// Words lists the dictionary names in sorted order.
func (m *Machine) Words() []string {
	names := make([]string, 0, len(m.dict))
	for name := range m.dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe reports whether name is defined, and if so whether it is native
// and how many tokens a compiled body holds.
func (m *Machine) Describe(name string) (native bool, size int, ok bool) {
	switch def := m.dict[name].(type) {
	case nativeWord:
		return true, 0, true
	case compiledWord:
		return false, len(def.body), true
	}
	return false, 0, false
}

//// Declarers

func (m *Machine) isDeclarer(name string) bool {
	_, ok := m.declarers[name]
	return ok
}

func (m *Machine) addDeclarer(name string) {
	if m.declarers == nil {
		m.declarers = make(map[string]struct{})
	}
	m.declarers[name] = struct{}{}
	m.logf("declarer %q", name)
}

//// Dispatch

// Compiling reports whether the machine is mid-definition.
func (m *Machine) Compiling() bool { return m.depth > 0 }

// RunToken is the single dispatch entry point. Outside compile mode it
// pushes values, skips comments, enters compile mode on a declaration
// trigger, and otherwise invokes a dictionary name. Inside compile mode it
// delegates to compileToken.
func (m *Machine) RunToken(tok Token) error {
	if m.depth > 0 {
		return m.compileToken(tok)
	}
	switch tok.Kind {
	case Literal:
		m.logf("push %q", tok.Name)
		m.Push(Text(tok.Name))
		return nil
	case Number:
		m.logf("push %v", tok.Num)
		m.Push(Int(tok.Num))
		return nil
	case Comment:
		return nil
	case DeclarationMark:
		m.beginCompile(tok)
		return nil
	}
	if m.isDeclarer(tok.Name) {
		m.beginCompile(tok)
		return nil
	}
	if !m.Defined(tok.Name) {
		return UnknownNameError{Name: tok.Name}
	}
	return m.Execute(tok.Name)
}

func (m *Machine) beginCompile(tok Token) {
	m.depth++
	m.logf("compile begin %v depth=%v", tok, m.depth)
}

// compileToken handles one token while compileDepth > 0.
//
// A declaration-marked token records the current top of stack -- without
// popping it -- as a declarer. A closing keyword (unless spelled as a
// literal or number) ends the innermost unit: the name is popped and the
// accumulated buffer registered under it. All nesting levels share the one
// buffer; it is reset only when depth returns to zero, so an inner unit
// that closes registers everything accumulated so far. Every token that
// leaves the machine still compiling is appended to the buffer.
func (m *Machine) compileToken(tok Token) error {
	if tok.Kind == DeclarationMark {
		top, err := m.peek()
		if err != nil {
			return err
		}
		name, err := top.Text()
		if err != nil {
			return err
		}
		m.addDeclarer(name)
	}

	if tok.Kind != Literal && tok.Kind != Number && isUnitClose(tok.Name) {
		m.depth--
		if err := m.finishUnit(); err != nil {
			return err
		}
		if m.depth == 0 {
			m.compile = m.compile[:0]
			return nil
		}
	} else if tok.Kind == Identifier && m.isDeclarer(tok.Name) {
		m.depth++
		m.logf("compile nest %v depth=%v", tok, m.depth)
	}

	m.compile = append(m.compile, tok)
	return nil
}

// finishUnit pops the defined name and registers a snapshot of the compile
// buffer under it. Registration happens only here, so a failure anywhere
// mid-compilation leaves the dictionary untouched.
func (m *Machine) finishUnit() error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	name, err := v.Text()
	if err != nil {
		return err
	}
	body := make([]Token, len(m.compile))
	copy(body, m.compile)
	m.dict[name] = compiledWord{name: name, body: body}
	m.logf("defined %q (%v tokens) depth=%v", name, len(body), m.depth)
	return nil
}

// Execute invokes a dictionary name directly. Native operations receive the
// machine and may pop, push, and re-enter Execute or RunToken; compiled
// procedures replay their bodies. Invocation nests on the Go call stack.
func (m *Machine) Execute(name string) error {
	def, ok := m.dict[name]
	if !ok {
		return UnknownNameError{Name: name}
	}
	if m.maxCall > 0 {
		if m.calls >= m.maxCall {
			return fmt.Errorf("call depth exceeded invoking %q", name)
		}
		m.calls++
		defer func() { m.calls-- }()
	}
	m.logf("execute %q", name)
	return def.run(m)
}

//// Driver loop

// eval scans, tokenizes, and runs one source buffer against the machine,
// checking ctx between top-level tokens. It is re-entrant: 読み込む feeds
// another buffer through here into the same machine.
func (m *Machine) eval(ctx context.Context, buf source.Buffer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	prev := m.ctx
	m.ctx = ctx
	defer func() {
		m.ctx = prev
		if ferr := m.out.Flush(); err == nil {
			err = ferr
		}
	}()

	m.logf("eval %v", buf)
	toks := NewTokenizer(NewScanner(buf.Text))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok, ok := toks.Next()
		if !ok {
			return nil
		}
		if err := m.RunToken(tok); err != nil {
			return err
		}
	}
}
