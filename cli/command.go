package cli

import (
	"os"

	"github.com/grovetools/sticky/config"
	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/logging"
	"github.com/grovetools/sticky/util/pathutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds the options shared by every sticky command
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a command with the standard sticky flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to sticky.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the CLI logger, adjusted for --verbose and --json.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	entry := logging.NewLogger("sticky-cli")

	opts := GetOptions(cmd)
	if opts.Verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}
	if opts.JSONOutput {
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return entry
}

// GetOptions extracts the standard options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// InitConfig resolves the configuration file path: the flag when given,
// otherwise the nearest sticky.yml. An empty path means none was found.
func InitConfig(configFile string) (string, error) {
	if configFile != "" {
		return configFile, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	foundConfigFile, err := config.FindConfigFile(cwd)
	if err != nil {
		return "", nil
	}

	return foundConfigFile, nil
}

// LoadConfig loads the configuration for cmd. An explicit --config must
// exist; without one the layered search is used and a missing file falls
// back to defaults. The returned path is empty when defaults are used.
func LoadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	opts := GetOptions(cmd)
	if opts.ConfigFile != "" {
		path, err := pathutil.Expand(opts.ConfigFile)
		if err != nil {
			return nil, "", err
		}
		cfg, err := config.Load(path)
		return cfg, path, err
	}

	path, err := InitConfig("")
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadDefault()
	if errors.Is(err, errors.ErrCodeConfigNotFound) {
		return config.Default(), "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
