package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grovetools/sticky/cli"
	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/tui/components/table"
	"github.com/grovetools/sticky/tui/keymap"
	"github.com/spf13/cobra"
)

var presets = []string{"vim", "emacs", "arrows"}

func NewKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the viewer keybindings",
		Long: `List the viewer keybindings after applying the configured preset and
overrides. The config key column names the entry to set under
tui.keybindings to rebind an action.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("preset") {
				preset, _ := cmd.Flags().GetString("preset")
				if !validPreset(preset) {
					return errors.InvalidInput("preset", preset, "must be one of "+strings.Join(presets, ", "))
				}
				cfg.TUI.Preset = preset
			}

			sections := keymap.Export(keymap.Load(cfg))
			out := cmd.OutOrStdout()

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(sections, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			opts := table.DefaultOptions()
			opts.Plain = !isTerminal(out)
			t := table.NewWithOptions(opts, "section", "keys", "action", "config key")
			for _, s := range sections {
				for _, b := range s.Bindings {
					if !b.Enabled {
						continue
					}
					t.Row(s.Name, strings.Join(b.Keys, " "), b.Description, b.ConfigKey)
				}
			}
			fmt.Fprintln(out, t.String())
			return nil
		},
	}
	cmd.Flags().String("preset", "", "Show a preset instead of the configured one: vim, emacs, or arrows")
	return cmd
}

func validPreset(name string) bool {
	for _, p := range presets {
		if p == name {
			return true
		}
	}
	return false
}
