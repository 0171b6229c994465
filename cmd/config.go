package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/sticky/cli"
	"github.com/grovetools/sticky/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the layered configuration for the current directory",
		Long: `Shows how the final configuration is built by merging layers:
1. Global config (~/.config/sticky/sticky.yml)
2. Project config (sticky.yml, searched upwards)
3. Override files (sticky.override.yml)
This is useful for debugging configuration issues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current directory: %w", err)
				}
				dir = cwd
			}

			layered, err := config.LoadLayered(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cli.GetOptions(cmd).JSONOutput {
				return writeLayersJSON(out, layered)
			}
			return writeLayers(out, layered)
		},
	}
	cmd.Flags().String("dir", "", "Directory to resolve configuration from (default: current)")
	return cmd
}

func writeLayers(w io.Writer, layered *config.LayeredConfig) error {
	printLayer := func(title, path string, cfg *config.Config) error {
		if cfg == nil {
			return nil
		}
		fmt.Fprintf(w, "--- # %s\n", title)
		if path != "" {
			fmt.Fprintf(w, "# Source: %s\n", path)
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if err := printLayer("GLOBAL CONFIG", layered.FilePaths[config.SourceGlobal], layered.Global); err != nil {
		return err
	}
	if err := printLayer("PROJECT CONFIG", layered.FilePaths[config.SourceProject], layered.Project); err != nil {
		return err
	}
	for _, override := range layered.Overrides {
		if err := printLayer("OVERRIDE CONFIG", override.Path, override.Config); err != nil {
			return err
		}
	}
	return printLayer("FINAL MERGED CONFIG", "", layered.Final)
}

type layerJSON struct {
	Source string         `json:"source"`
	Path   string         `json:"path,omitempty"`
	Config *config.Config `json:"config"`
}

func writeLayersJSON(w io.Writer, layered *config.LayeredConfig) error {
	var layers []layerJSON
	if layered.Global != nil {
		layers = append(layers, layerJSON{string(config.SourceGlobal), layered.FilePaths[config.SourceGlobal], layered.Global})
	}
	if layered.Project != nil {
		layers = append(layers, layerJSON{string(config.SourceProject), layered.FilePaths[config.SourceProject], layered.Project})
	}
	for _, override := range layered.Overrides {
		layers = append(layers, layerJSON{string(config.SourceOverride), override.Path, override.Config})
	}
	layers = append(layers, layerJSON{Source: "final", Config: layered.Final})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(layers)
}
