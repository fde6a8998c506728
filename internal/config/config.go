package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the navgeo command line configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Env   string `yaml:"env"`   // prod, local, dev (default: prod)
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Format string `yaml:"format"` // yaml, json (default: yaml)
	Unit   string `yaml:"unit"`   // nm, m, km (default: nm)
}

// Load reads configuration from a YAML file. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		// Substitute env variables of the form ${VAR}
		data = expandEnvVars(data)

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Logging.Env == "" {
		c.Logging.Env = "prod"
	}
	if c.Output.Format == "" {
		c.Output.Format = "yaml"
	}
	if c.Output.Unit == "" {
		c.Output.Unit = "nm"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Logging.Env {
	case "prod", "local", "dev":
	default:
		return fmt.Errorf("logging.env must be one of prod, local, dev, got %q", c.Logging.Env)
	}
	switch c.Output.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("output.format must be \"yaml\" or \"json\", got %q", c.Output.Format)
	}
	switch c.Output.Unit {
	case "nm", "m", "km":
	default:
		return fmt.Errorf("output.unit must be one of nm, m, km, got %q", c.Output.Unit)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
