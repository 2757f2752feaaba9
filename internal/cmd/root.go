// Package cmd implements the shq CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/unrss/shq/internal/config"
)

// Assets holds embedded files passed from main.
type Assets struct {
	Version string
}

// cfg holds the loaded configuration, available to all commands.
var cfg *config.Config

// Execute runs the root command with the provided assets.
func Execute(assets Assets) error {
	root := newRootCmd(assets)
	return root.Execute()
}

func newRootCmd(assets Assets) *cobra.Command {
	var opts quoteOptions

	cmd := &cobra.Command{
		Use:   "shq [flags] [arg ...]",
		Short: "Quote arguments for a shell",
		Long: `shq quotes each argument so that the target shell parses it back as a
single literal word, with no word splitting, globbing, or metacharacter
interpretation. With no arguments it reads standard input and quotes the
whole contents as one word.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.shell, "shell", "s", "",
		"shell dialect to quote for (sh, dash, bash, zsh, fish)")
	cmd.Flags().BoolVar(&opts.check, "check", false,
		"fail on bytes the dialect cannot represent instead of quoting best-effort")

	cmd.AddCommand(
		newVersionCmd(assets.Version),
	)

	return cmd
}

func initConfig() error {
	var err error
	cfg, err = config.Load()
	return err
}
