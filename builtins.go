package main

import (
	"io"

	"github.com/kotoba-lang/kotoba/internal/source"
)

// registerBuiltins seeds the dictionary with the native word set. It runs
// before the first token is processed; programs may overwrite any of these.
func registerBuiltins(m *Machine) {
	m.Define("書く", opWrite)
	m.Define("改行", opNewline)
	m.Define("実行", opInvoke)
	m.Define("深さ", opDepth)
	m.Define("つなぐ", opConcat)
	m.Define("ゼロか", opZeroTest)
	m.Define("足す", opAdd)
	m.Define("引く", opSub)
	m.Define("掛ける", opMul)
	m.Define("捨てる", opDrop)
	m.Define("入れ替える", opSwap)
	m.Define("複写", opDupBottom)
	m.Define("負にする", opNegateBottom)
	m.Define("読み込む", opLoad)
}

// 書く pops the top of the stack and writes its text form, no newline.
func opWrite(m *Machine) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	_, err = io.WriteString(m.out, v.String())
	return err
}

// 改行 writes a newline.
func opNewline(m *Machine) error {
	_, err := m.out.Write([]byte{'\n'})
	return err
}

// 実行 pops a name and executes it as a command.
func opInvoke(m *Machine) error {
	name, err := m.popText()
	if err != nil {
		return err
	}
	return m.Execute(name)
}

// 深さ pushes the current stack depth.
func opDepth(m *Machine) error {
	m.Push(Int(m.Depth()))
	return nil
}

// つなぐ pops y then x and pushes the text x+y.
func opConcat(m *Machine) error {
	y, err := m.popText()
	if err != nil {
		return err
	}
	x, err := m.popText()
	if err != nil {
		return err
	}
	m.Push(Text(x + y))
	return nil
}

// ゼロか pops an integer and pushes 1 if it was zero, else 0.
func opZeroTest(m *Machine) error {
	n, err := m.popInt()
	if err != nil {
		return err
	}
	if n == 0 {
		m.Push(Int(1))
	} else {
		m.Push(Int(0))
	}
	return nil
}

// 足す pops two integers and pushes their sum.
func opAdd(m *Machine) error {
	y, err := m.popInt()
	if err != nil {
		return err
	}
	x, err := m.popInt()
	if err != nil {
		return err
	}
	m.Push(Int(x + y))
	return nil
}

// 引く pops y then x and pushes x-y.
func opSub(m *Machine) error {
	y, err := m.popInt()
	if err != nil {
		return err
	}
	x, err := m.popInt()
	if err != nil {
		return err
	}
	m.Push(Int(x - y))
	return nil
}

// 掛ける pops two integers and pushes their product.
func opMul(m *Machine) error {
	y, err := m.popInt()
	if err != nil {
		return err
	}
	x, err := m.popInt()
	if err != nil {
		return err
	}
	m.Push(Int(x * y))
	return nil
}

// 捨てる pops the top of the stack and discards it.
func opDrop(m *Machine) error {
	_, err := m.Pop()
	return err
}

// 入れ替える swaps the top two values.
func opSwap(m *Machine) error {
	y, err := m.Pop()
	if err != nil {
		return err
	}
	x, err := m.Pop()
	if err != nil {
		return err
	}
	m.Push(y)
	m.Push(x)
	return nil
}

// 複写 pushes a copy of the *bottom* of the stack. Reading the bottom
// rather than the top is inherited from the original built-in table.
func opDupBottom(m *Machine) error {
	v, err := m.bottom()
	if err != nil {
		return err
	}
	m.Push(v)
	return nil
}

// 負にする negates the integer at the *bottom* of the stack in place; the
// same historical quirk as 複写.
func opNegateBottom(m *Machine) error {
	v, err := m.bottom()
	if err != nil {
		return err
	}
	n, err := v.Int()
	if err != nil {
		return err
	}
	m.stack[0] = Int(-n)
	return nil
}

// 読み込む pops a file name, resolves it against the load paths, and runs
// it through a fresh scanner and tokenizer into this same machine, so its
// definitions and stack effects accumulate here.
func opLoad(m *Machine) error {
	name, err := m.popText()
	if err != nil {
		return err
	}
	buf, err := source.Resolve(name, m.paths)
	if err != nil {
		return err
	}
	return m.eval(m.ctx, buf)
}
