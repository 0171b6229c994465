package cmd

import (
	"github.com/grovetools/sticky/cli"
	"github.com/grovetools/sticky/version"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the sticky command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"sticky",
		"Read documents with section headers that stick to the top of the terminal",
	)
	root.Long = `Read documents with section headers that stick to the top of the terminal.

Markdown headings, plain files and whole directories are split into
sections. While a section crosses the top of the window its header stays
pinned, and the next section pushes it out.

Examples:
# read a markdown file
sticky view README.md

# follow a log, one header per file
sticky view --follow app.log

# replay a scripted scroll session
sticky simulate scroll.yml`

	cli.SetVersionTemplate(root, version.GetInfo())

	root.AddCommand(
		NewViewCmd(),
		NewDemoCmd(),
		NewSimulateCmd(),
		NewConfigCmd(),
		NewSchemaCmd(),
		NewKeysCmd(),
		cli.NewVersionCommand("sticky"),
	)

	cli.ApplyStyledHelpRecursive(root)
	return root
}
