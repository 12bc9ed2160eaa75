package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kotoba-lang/kotoba/internal/source"
)

const continuePrompt = "  ...> "

// runREPL evaluates lines against one persistent machine, so definitions
// and stack effects accumulate across inputs. A definition may span lines:
// while the machine is mid-compile the prompt switches to a continuation
// prompt and dot-commands are suspended. Evaluation errors are reported and
// the session continues; only readline failures end it.
func runREPL(ctx context.Context, m *Machine, cfg Config, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newWordCompleter(m),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(out, "kotoba (言葉) %v\n", version)
	fmt.Fprintln(out, "Type .help for commands, .quit to exit")

	lineno := 0
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") && !m.Compiling() {
			if quit := runDotCommand(m, out, line); quit {
				return nil
			}
			continue
		}

		lineno++
		name := fmt.Sprintf("<repl:%v>", lineno)
		if err := m.Run(ctx, source.Text(name, line)); err != nil {
			fmt.Fprintf(out, "エラー: %v\n", err)
		} else if !m.Compiling() {
			fmt.Fprintln(out, "ok")
		}

		if m.Compiling() {
			rl.SetPrompt(continuePrompt)
		} else {
			rl.SetPrompt(cfg.Prompt)
		}
	}
}

// newWordCompleter completes dictionary words (live, so words defined
// during the session complete too) and the dot-commands.
func newWordCompleter(m *Machine) *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItemDynamic(func(string) []string { return m.Words() }),
		readline.PcItem(".words"),
		readline.PcItem(".stack"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
	)
}

func runDotCommand(m *Machine, out io.Writer, line string) (quit bool) {
	switch line {
	case ".quit", ".exit":
		return true
	case ".words":
		writeWordsTable(out, m)
	case ".stack":
		writeStackTable(out, m)
	case ".help":
		fmt.Fprintln(out, ".words	list dictionary words")
		fmt.Fprintln(out, ".stack	show the operand stack")
		fmt.Fprintln(out, ".quit	leave the session")
	default:
		fmt.Fprintf(out, "unknown command %q (try .help)\n", line)
	}
	return false
}

func writeWordsTable(out io.Writer, m *Machine) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"word", "kind", "tokens"})
	for _, name := range m.Words() {
		native, size, ok := m.Describe(name)
		if !ok {
			continue
		}
		if native {
			t.AppendRow(table.Row{name, "native", "-"})
		} else {
			t.AppendRow(table.Row{name, "compiled", size})
		}
	}
	t.Render()
}

func writeStackTable(out io.Writer, m *Machine) {
	stack := m.Stack()
	if len(stack) == 0 {
		fmt.Fprintln(out, "(stack empty)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"pos", "kind", "value"})
	for i := len(stack) - 1; i >= 0; i-- {
		pos := len(stack) - 1 - i // 0 is top of stack
		t.AppendRow(table.Row{pos, stack[i].Kind().String(), stack[i].String()})
	}
	t.Render()
}
