// Package config loads the h2 command line configuration.
//
// Values are merged from, lowest to highest priority: built-in defaults, the
// config file (h2.yaml), H2_* environment variables and explicitly set
// command line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix prefixes the environment variables read by Load.
	EnvPrefix = "H2_"

	OutputTree = "tree"
	OutputText = "text"

	LogFormatText = "text"
	LogFormatJSON = "json"

	DefaultPrompt = "h2> "
)

// configFiles are looked up in the working directory when no config file is
// given.
var configFiles = []string{"h2.yaml", "h2.yml"}

// Config holds the command line configuration.
type Config struct {
	Debug     bool   `koanf:"debug"`
	Verbose   int    `koanf:"verbose"`
	Trace     bool   `koanf:"trace"`
	Comments  bool   `koanf:"comments"`
	Positions bool   `koanf:"positions"`
	Output    string `koanf:"output"`
	LogFormat string `koanf:"log_format"`
	Prompt    string `koanf:"prompt"`
	History   string `koanf:"history"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"debug":      false,
		"verbose":    0,
		"trace":      false,
		"comments":   false,
		"positions":  false,
		"output":     OutputTree,
		"log_format": LogFormatText,
		"prompt":     DefaultPrompt,
		"history":    "",
	}
}

// findConfigFile returns the config file to load.
// Priority: explicit path > h2.yaml > h2.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads the configuration. cfgFile may be empty; flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// H2_LOG_FORMAT -> log_format
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTree, OutputText:
	default:
		return fmt.Errorf("invalid output %q: must be %s or %s", c.Output, OutputTree, OutputText)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log_format %q: must be %s or %s",
			c.LogFormat, LogFormatText, LogFormatJSON)
	}
	if c.Verbose < 0 {
		return fmt.Errorf("invalid verbose level %d", c.Verbose)
	}
	return nil
}
