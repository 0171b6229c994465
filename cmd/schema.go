package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/sticky/config"
	"github.com/grovetools/sticky/logging"
	"github.com/spf13/cobra"
)

func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of sticky.yml",
		Long: `Print the JSON schema of sticky.yml, or write it to a file for editor
completion.

Examples:
sticky schema
sticky schema -o .vscode/sticky.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
				return err
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr())
			pretty.Success("Schema written")
			pretty.Path("path", output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the schema to a file instead of stdout")
	return cmd
}
