package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/unrss/shq"
)

type quoteOptions struct {
	shell string // dialect name from --shell
	check bool   // fail on unrepresentable bytes
}

// runQuote implements the root command: quote each argument for the
// chosen shell, joined by single spaces, or quote all of stdin as one
// word when no arguments are given.
func runQuote(cmd *cobra.Command, opts quoteOptions, args []string) error {
	dialect, err := resolveDialect(opts.shell)
	if err != nil {
		return err
	}
	strict := opts.check || cfg.Strict

	if len(args) == 0 {
		if in, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(in.Fd())) {
			// Nothing to quote and nobody piping input.
			return cmd.Help()
		}
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if strict {
			if err := dialect.Check(input); err != nil {
				return err
			}
		}
		_, err = cmd.OutOrStdout().Write(dialect.Quote(input))
		return err
	}

	var out []byte
	for i, arg := range args {
		if strict {
			if err := dialect.Check([]byte(arg)); err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
		}
		if i > 0 {
			out = append(out, ' ')
		}
		out = dialect.Append(out, []byte(arg))
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// resolveDialect picks the dialect from the --shell flag, then config,
// then the basename of $SHELL, then plain sh.
func resolveDialect(flag string) (shq.Dialect, error) {
	name := flag
	if name == "" {
		name = cfg.Shell
	}
	if name == "" {
		if sh := os.Getenv("SHELL"); sh != "" {
			name = filepath.Base(sh)
		}
	}
	if name == "" {
		name = "sh"
	}

	d := shq.Get(name)
	if d == nil {
		return nil, fmt.Errorf("unsupported shell: %s (supported: %v)", name, shq.Supported())
	}
	return d, nil
}
