package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/sticky/errors"
	"github.com/grovetools/sticky/schema"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames lists the file names searched for, in precedence order.
var configNames = []string{
	"sticky.yml",
	"sticky.yaml",
	".sticky.yml",
	".sticky.yaml",
	"sticky.toml",
	".sticky.toml",
}

// knownKeys are the top-level keys decoded into Config fields; everything
// else in a TOML file lands in Extensions.
var knownKeys = map[string]bool{
	"version": true,
	"frame":   true,
	"sticky":  true,
	"view":    true,
	"tui":     true,
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	if isTOML(path) {
		return LoadFromTOML(data)
	}
	return LoadFromBytes(data)
}

// LoadDefault finds and loads the configuration with hierarchical merging:
// 1. Global config (~/.config/sticky/sticky.yml) - base layer
// 2. Project config (sticky.yml) - overrides global
// 3. Local override (sticky.override.yml) - overrides all
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger loads configuration with hierarchical merging and logging
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	logger.WithField("path", projectPath).Debug("Loading project configuration")

	var finalConfig *Config

	// 1. Global config (optional)
	if globalPath := getXDGConfigPath(); globalPath != "" && globalPath != projectPath {
		if _, err := os.Stat(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			globalConfig, err := readRaw(globalPath)
			if err == nil {
				finalConfig = globalConfig
			} else {
				logger.WithError(err).Warn("Failed to load global configuration, continuing without it")
			}
		}
	}

	// 2. Project config (required)
	projectConfig, err := readRaw(projectPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse project config").
			WithDetail("path", projectPath)
	}

	if finalConfig == nil {
		finalConfig = projectConfig
	} else {
		logger.Debug("Merging project configuration over global configuration")
		finalConfig = mergeConfigs(finalConfig, projectConfig)
	}

	// 3. Override files (optional)
	for _, overridePath := range overrideFiles(filepath.Dir(projectPath)) {
		if _, err := os.Stat(overridePath); err != nil {
			continue
		}
		logger.WithField("path", overridePath).Debug("Loading local override configuration")

		overrideConfig, err := readRaw(overridePath)
		if err != nil {
			logger.WithError(err).Warn("Failed to load override file, skipping")
			continue
		}
		finalConfig = mergeConfigs(finalConfig, overrideConfig)
	}

	if err := finalize(finalConfig); err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded and validated successfully")

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		configData, err := yaml.Marshal(finalConfig)
		if err == nil {
			logger.Debugf("Merged configuration:\n%s", string(configData))
		}
	}

	return finalConfig, nil
}

// LoadFromBytes parses YAML configuration from a byte array
func LoadFromBytes(data []byte) (*Config, error) {
	config, err := decodeYAML(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}

	if err := finalize(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromTOML parses TOML configuration from a byte array
func LoadFromTOML(data []byte) (*Config, error) {
	config, err := decodeTOML(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
	}

	if err := finalize(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Default returns a configuration with only default values applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// finalize validates against the schema, applies defaults, and runs the
// semantic checks.
func finalize(config *Config) error {
	validator, err := schema.NewValidator()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create validator")
	}

	if err := validator.Validate(config); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
	}

	config.SetDefaults()

	return config.Validate()
}

// readRaw loads a file without defaults or validation, for merging.
func readRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isTOML(path) {
		return decodeTOML(data)
	}
	return decodeYAML(data)
}

func decodeYAML(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func decodeTOML(data []byte) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var config Config
	if err := toml.Unmarshal(expanded, &config); err != nil {
		return nil, err
	}

	// TOML has no inline catch-all; collect unknown tables by hand.
	var raw map[string]interface{}
	if err := toml.Unmarshal(expanded, &raw); err != nil {
		return nil, err
	}
	for key, value := range raw {
		if knownKeys[key] {
			continue
		}
		if config.Extensions == nil {
			config.Extensions = make(map[string]interface{})
		}
		config.Extensions[key] = value
	}

	return &config, nil
}

func isTOML(path string) bool {
	return strings.HasSuffix(path, ".toml")
}

func overrideFiles(dir string) []string {
	return []string{
		filepath.Join(dir, "sticky.override.yml"),
		filepath.Join(dir, "sticky.override.yaml"),
		filepath.Join(dir, ".sticky.override.yml"),
		filepath.Join(dir, ".sticky.override.yaml"),
		filepath.Join(dir, "sticky.override.toml"),
	}
}

// FindConfigFile searches for sticky configuration files with the following precedence:
// 1. Current directory up to filesystem root
// 2. Git repository root (if in a git repo)
// 3. XDG config directory (~/.config/sticky/sticky.yml)
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if gitRoot, err := getGitRoot(startDir); err == nil && gitRoot != "" {
		for _, name := range configNames {
			path := filepath.Join(gitRoot, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// getGitRoot attempts to find the git repository root
func getGitRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// getXDGConfigPath returns the global config path
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "sticky", "sticky.yml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "sticky", "sticky.yml")
	}

	return ""
}

// LoadLayered finds and loads all configuration layers (global, project, overrides)
// without merging them, for analysis purposes. It also computes the final merged config.
func LoadLayered(startDir string) (*LayeredConfig, error) {
	layeredConfig := &LayeredConfig{
		Overrides: make([]OverrideSource, 0),
		FilePaths: make(map[ConfigSource]string),
		Default:   Default(),
	}

	if globalPath := getXDGConfigPath(); globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			if globalConfig, err := readRaw(globalPath); err == nil {
				layeredConfig.Global = globalConfig
				layeredConfig.FilePaths[SourceGlobal] = globalPath
			}
		}
	}

	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to find project config file")
	}
	if projectPath != layeredConfig.FilePaths[SourceGlobal] {
		projectConfig, err := readRaw(projectPath)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse project config").
				WithDetail("path", projectPath)
		}
		layeredConfig.Project = projectConfig
		layeredConfig.FilePaths[SourceProject] = projectPath
	}

	for _, overridePath := range overrideFiles(filepath.Dir(projectPath)) {
		if _, err := os.Stat(overridePath); err != nil {
			continue
		}
		overrideConfig, err := readRaw(overridePath)
		if err != nil {
			continue
		}
		layeredConfig.Overrides = append(layeredConfig.Overrides, OverrideSource{
			Path:   overridePath,
			Config: overrideConfig,
		})
	}

	finalConfig := &Config{}
	if layeredConfig.Global != nil {
		finalConfig = mergeConfigs(finalConfig, layeredConfig.Global)
	}
	if layeredConfig.Project != nil {
		finalConfig = mergeConfigs(finalConfig, layeredConfig.Project)
	}
	for _, override := range layeredConfig.Overrides {
		finalConfig = mergeConfigs(finalConfig, override.Config)
	}

	if err := finalize(finalConfig); err != nil {
		return nil, err
	}
	layeredConfig.Final = finalConfig

	return layeredConfig, nil
}
