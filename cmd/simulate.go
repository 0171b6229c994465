package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/sticky/cli"
	"github.com/grovetools/sticky/simulate"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate SCRIPT",
		Short: "Replay a scroll script and print header state per step",
		Long: `Replay a scroll script and print header state per step.

A script (YAML or TOML) names a window size, a document and a list of
steps. Each step scrolls, jumps, resizes, sends a touch or window event,
changes options or appends lines. After every step pending frames are
flushed and the stuck headers are recorded.

Examples:
sticky simulate scroll.yml
sticky simulate --json scroll.toml | jq '.rows[].stuck'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			opts := cli.GetOptions(cmd)

			script, err := simulate.Load(args[0])
			if err != nil {
				return err
			}
			logger.WithField("steps", len(script.Steps)).Debug("Running simulation")

			res, err := simulate.Run(script, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.JSONOutput {
				data, err := res.JSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, data)
				return nil
			}

			plain, _ := cmd.Flags().GetBool("plain")
			if !cmd.Flags().Changed("plain") {
				plain = !isTerminal(out)
			}
			fmt.Fprintln(out, res.Report(plain))
			return nil
		},
	}
	cmd.Flags().Bool("plain", false, "Render the table without colors (default when not a terminal)")
	return cmd
}

func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
