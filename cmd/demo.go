package cmd

import (
	"github.com/grovetools/sticky/cli"
	"github.com/grovetools/sticky/document"
	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/tui/components/stickyview"
	"github.com/spf13/cobra"
)

func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open the viewer on generated sections",
		Long: `Open the viewer on generated sections.

Examples:
sticky demo
sticky demo --sections 5 --lines 40 --relative`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyStickyFlags(cmd, cfg); err != nil {
				return err
			}

			sections, _ := cmd.Flags().GetInt("sections")
			lines, _ := cmd.Flags().GetInt("lines")
			if sections < 1 {
				return errors.InvalidInput("sections", sections, "must be at least 1")
			}
			if lines < 0 {
				return errors.InvalidInput("lines", lines, "must not be negative")
			}

			return runViewer(document.Generate(sections, lines),
				stickyview.WithConfig(cfg),
				stickyview.WithLogger(cli.GetLogger(cmd)),
			)
		},
	}

	addStickyFlags(cmd)
	cmd.Flags().Int("sections", 12, "Number of sections")
	cmd.Flags().Int("lines", 20, "Body lines per section")
	return cmd
}
