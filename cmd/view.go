package cmd

import (
	"io"
	"os"

	"github.com/grovetools/sticky/cli"
	"github.com/grovetools/sticky/config"
	"github.com/grovetools/sticky/document"
	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/logging"
	"github.com/grovetools/sticky/tui/components/stickyview"
	"github.com/grovetools/sticky/tui/keymap"
	"github.com/grovetools/sticky/tui/theme"
	"github.com/grovetools/sticky/util/pathutil"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func NewViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [PATH...]",
		Short: "Open documents in the sticky-header viewer",
		Long: `Open documents in the sticky-header viewer.

Markdown files are split at headings up to --heading-level. Other files
become a single section named after the file, and a directory becomes one
section per file. With no PATH, markdown is read from stdin.

Examples:
sticky view README.md docs/
sticky view --heading-level 3 --relative guide.md
sticky view --follow --exclude '*.gz' /var/log/app.log
cat notes.md | sticky view`,
		RunE: runView,
	}

	addStickyFlags(cmd)
	f := cmd.Flags()
	f.Int("heading-level", 2, "Deepest markdown heading that starts a section")
	f.StringSlice("include", nil, "Patterns of files to read from directories")
	f.StringSlice("exclude", nil, "Patterns of files to skip in directories")
	f.BoolP("follow", "f", false, "Append lines written to the last file")
	f.BoolP("watch", "w", false, "Reload the configuration when it changes")

	cli.SetStyledHelpWithExtras(cmd, func(w io.Writer, t *theme.Theme) {
		keys := keymap.DefaultVim()
		io.WriteString(w, "\n "+t.Muted.Render("Press "+keys.Help.Help().Key+" in the viewer for all keybindings.")+"\n")
	})
	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	logger := cli.GetLogger(cmd)

	cfg, cfgPath, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyStickyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := applyViewFlags(cmd, cfg); err != nil {
		return err
	}

	paths, err := pathutil.ExpandAll(args)
	if err != nil {
		return errors.InvalidInput("path", args, err.Error())
	}

	doc, err := loadDocuments(cmd.InOrStdin(), paths, cfg)
	if err != nil {
		return err
	}

	opts := []stickyview.Option{
		stickyview.WithConfig(cfg),
		stickyview.WithLogger(logger),
	}
	if cfg.View.Follow {
		path, err := followTarget(paths)
		if err != nil {
			return err
		}
		opts = append(opts, stickyview.WithFollow(path))
	}
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		if cfgPath == "" {
			logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).
				Warn("No configuration file found; --watch has nothing to reload")
		} else {
			opts = append(opts, stickyview.WithConfigWatch(cfgPath))
		}
	}

	return runViewer(doc, opts...)
}

// loadDocuments reads every path into one document, or stdin when no path
// is given and stdin is not a terminal.
func loadDocuments(stdin io.Reader, paths []string, cfg *config.Config) (*document.Document, error) {
	level := cfg.View.HeadingLevel

	if len(paths) == 0 {
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return nil, errors.InvalidInput("path", "", "no document given and stdin is a terminal")
		}
		return document.Read("stdin", stdin, true, level)
	}

	opts := document.DirOptions{Include: cfg.View.Include, Exclude: cfg.View.Exclude}
	docs := make([]*document.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := document.Load(path, level, opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return document.Merge(docs...), nil
}

// followTarget is the last path, which must be a regular file.
func followTarget(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", errors.InvalidInput("follow", "stdin", "follow needs a file")
	}
	path := paths[len(paths)-1]
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.DocumentNotFound(path, err)
	}
	if info.IsDir() {
		return "", errors.InvalidInput("follow", path, "cannot follow a directory")
	}
	return path, nil
}
