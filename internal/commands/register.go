// Package commands contains all CLI command definitions.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"typemap-resolver/internal/config"
)

// app carries what every command needs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}

	rootCmd := &cobra.Command{
		Use:   "typemap-resolver",
		Short: "Resolve and lint type mapping rules of an api processor",
		Long: `typemap-resolver loads a type mapping file and answers which rule applies
to a schema occurrence of an api: endpoint rules first, then global rules.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfg.MappingFile, "mapping", "m", cfg.MappingFile,
		"mapping file (env TYPEMAP_CONFIG)")

	registerResolveCmd(rootCmd, a)
	registerCheckCmd(rootCmd, a)
	registerSchemaCmd(rootCmd)

	return rootCmd
}
