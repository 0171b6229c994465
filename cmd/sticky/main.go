package main

import (
	"os"

	"github.com/grovetools/sticky/cli"
	"github.com/grovetools/sticky/cmd"
	"github.com/grovetools/sticky/tui"
)

func main() {
	tui.InitializeTUI()

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
