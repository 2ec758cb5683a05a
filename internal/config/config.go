// Package config loads .widgetlint.yaml and maps it onto the engine's
// options: rule enablement, severity overrides, and the walker's
// trust-boundary name sets.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/phobologic/widgetlint/internal/rule"
	"github.com/phobologic/widgetlint/internal/walker"
)

const defaultMaxFileSize = 1_000_000 // 1 MB

// RuleConfig is the per-rule section.
type RuleConfig struct {
	Enabled  *bool  `mapstructure:"enabled"`
	Severity string `mapstructure:"severity"`
}

// WalkerConfig overrides the ancestor walker's boundary sets. Empty slices
// keep the defaults, so a config file can override one set in isolation.
type WalkerConfig struct {
	MaxDepth      int      `mapstructure:"max-depth"`
	BuilderParams []string `mapstructure:"builder-params"`
	CollectionOps []string `mapstructure:"collection-ops"`
	RenderMethods []string `mapstructure:"render-methods"`
}

// Config is the loaded configuration.
type Config struct {
	Format      string                `mapstructure:"format"`
	FailOn      string                `mapstructure:"fail-on"`
	MaxFileSize int                   `mapstructure:"max-file-size"`
	Walker      WalkerConfig          `mapstructure:"walker"`
	Rules       map[string]RuleConfig `mapstructure:"rules"`
}

// Load reads configuration for the repo at root. When path is non-empty it
// names an explicit config file and missing-file is an error; otherwise
// .widgetlint.yaml is searched for in root and absence yields defaults.
func Load(root, path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("format", "text")
	v.SetDefault("fail-on", "error")
	v.SetDefault("max-file-size", defaultMaxFileSize)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".widgetlint")
		v.SetConfigType("yaml")
		v.AddConfigPath(root)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// ActiveRules filters all down to the rules the config leaves enabled.
func (c *Config) ActiveRules(all []rule.Rule) []rule.Rule {
	var active []rule.Rule
	for _, r := range all {
		rc, ok := c.Rules[r.Name()]
		if ok && rc.Enabled != nil && !*rc.Enabled {
			continue
		}
		active = append(active, r)
	}
	return active
}

// Severities returns the per-rule severity overrides. Unknown severity
// strings are an error; silently downgrading a rule would hide findings.
func (c *Config) Severities() (map[string]rule.Severity, error) {
	out := map[string]rule.Severity{}
	for name, rc := range c.Rules {
		if rc.Severity == "" {
			continue
		}
		sev, err := rule.ParseSeverity(rc.Severity)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", name, err)
		}
		out[name] = sev
	}
	return out, nil
}

// Bounds maps the walker section onto walker.Boundaries, leaving nil fields
// for defaults.
func (c *Config) Bounds() walker.Boundaries {
	return walker.Boundaries{
		BuilderParams: c.Walker.BuilderParams,
		CollectionOps: c.Walker.CollectionOps,
		RenderMethods: c.Walker.RenderMethods,
	}
}
