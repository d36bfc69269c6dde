package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"typemap-resolver/internal/mapping"
)

func registerSchemaCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the mapping file",
		Example: `  # Enable editor completion for mapping files
  typemap-resolver schema > typemap.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(mapping.JSONSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return err
		},
	}

	parent.AddCommand(cmd)
}
