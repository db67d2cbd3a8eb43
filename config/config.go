package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultOutput         = "docs/data.json"
	defaultTimeoutSeconds = 20
	defaultConcurrency    = 1
)

// Config is the top-level configuration for depcheck.
type Config struct {
	Token          string             `yaml:"token"`           // Inline, ${ENV_VAR}, or file path
	Concurrency    int                `yaml:"concurrency"`     // Parallel lookups; 1 = sequential
	TimeoutSeconds int                `yaml:"request_timeout"` // Per-request timeout in seconds
	Output         string             `yaml:"output"`          // Report file path
	Project        ProjectConfig      `yaml:"project"`
	Dependencies   []DependencyConfig `yaml:"dependencies"`
}

// ProjectConfig points at the repository whose lockfile is checked in
// resolved mode.
type ProjectConfig struct {
	URL          string `yaml:"url"`
	Ref          string `yaml:"ref"` // Branch or commit; empty means the default branch
	ResolvedPath string `yaml:"resolved_path"`
}

// DependencyConfig is one statically declared dependency.
type DependencyConfig struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Current string `yaml:"current"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables in the token and resolving token file paths, then applies
// defaults. An absent token is valid: lookups run unauthenticated with a
// lower rate-limit budget.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Token = resolveToken(cfg.Token)
	applyDefaults(&cfg)

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depcheck.yaml",
		".depcheck.yml",
		"depcheck.yaml",
		"depcheck.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ValidateStatic checks the fields required by static-list mode.
func (c *Config) ValidateStatic() error {
	if len(c.Dependencies) == 0 {
		return errors.New("at least one dependency must be configured")
	}
	for i, dep := range c.Dependencies {
		if dep.Name == "" {
			return fmt.Errorf("dependencies[%d].name is required", i)
		}
		if dep.URL == "" {
			return fmt.Errorf("dependencies[%d].url is required", i)
		}
		if dep.Current == "" {
			return fmt.Errorf("dependencies[%d].current is required", i)
		}
	}
	return nil
}

// ValidateProject checks the fields required by resolved (lockfile) mode.
func (c *Config) ValidateProject() error {
	if c.Project.URL == "" {
		return errors.New("project.url is required for resolved mode")
	}
	if c.Project.ResolvedPath == "" {
		return errors.New("project.resolved_path is required for resolved mode")
	}
	return nil
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the token from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func applyDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
}
