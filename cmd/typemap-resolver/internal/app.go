// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"io"

	"typemap-resolver/internal/commands"
	"typemap-resolver/internal/config"
)

// Run is the main application logic, extracted for testability.
// It reads its defaults from the environment.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}

	rootCmd := commands.NewRootCmd(cfg, logger)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SilenceErrors = true

	return rootCmd.ExecuteContext(ctx)
}
