package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kotoba-lang/kotoba/internal/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "0.2.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		evals   []string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "kotoba [file ...]",
		Short: "kotoba (言葉) is a word-based, stack-oriented scripting language",
		Long: `kotoba (言葉) interprets a Forth-like notation written in Japanese script:
words push values onto an operand stack, invoke dictionary entries, or
compile new named procedures. Files given on the command line run in order
through one machine, so definitions accumulate across them. With no files
and no -e text, a terminal gets an interactive session and a pipe is read
as a program.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout != 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			opts := []MachineOption{
				WithOutput(cmd.OutOrStdout()),
				WithLoadPath(cfg.LoadPaths...),
			}
			if cfg.Trace {
				opts = append(opts, WithLogf(log.Printf))
			}
			m := New(opts...)

			for _, text := range evals {
				if err := m.Run(ctx, source.Text("<eval>", text)); err != nil {
					return err
				}
			}
			for _, path := range args {
				buf, err := source.Resolve(path, cfg.LoadPaths)
				if err != nil {
					return err
				}
				if err := m.Run(ctx, buf); err != nil {
					return err
				}
			}
			if len(evals) > 0 || len(args) > 0 {
				return nil
			}

			if term.IsTerminal(int(os.Stdin.Fd())) {
				return runREPL(ctx, m, cfg, cmd.OutOrStdout())
			}
			buf, err := source.ReadAll("<stdin>", cmd.InOrStdin())
			if err != nil {
				return err
			}
			return m.Run(ctx, buf)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./kotoba.yaml)")
	cmd.Flags().StringArrayVarP(&evals, "eval", "e", nil, "program text to evaluate before any files")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "limit total run time")
	cmd.Flags().Bool("trace", false, "enable trace logging")
	cmd.Flags().StringSlice("load-paths", nil, "directories searched for source files")
	cmd.Flags().String("prompt", "", "interactive prompt")
	cmd.Flags().String("history-file", "", "interactive history file")

	return cmd
}
