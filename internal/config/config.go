package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/zeth/jscodestyle/internal/diag"
)

// FileName is the configuration file looked up next to linted sources.
const FileName = ".jscodestyle.toml"

// QuoteStyle is the preferred string-quote character.
type QuoteStyle string

const (
	QuoteSingle QuoteStyle = "single"
	QuoteDouble QuoteStyle = "double"
	QuoteEither QuoteStyle = "either"
)

// Config is the option set consumed by the rule engine. Zero values
// are replaced by defaults in normalize, so a partially filled TOML
// file behaves predictably.
type Config struct {
	// IndentWidth is the expected spaces per nesting level.
	IndentWidth int `toml:"indent_width"`
	// MaxLineLength is the display-width limit per line; 0 disables.
	MaxLineLength int `toml:"max_line_length"`
	// QuoteStyle is the enforced string quote character.
	QuoteStyle QuoteStyle `toml:"quote_style"`
	// EnabledRules restricts checking to the listed rule ids when
	// non-empty. Unknown ids are ignored.
	EnabledRules []string `toml:"enabled_rules"`
	// DisabledRules removes rule ids from the run. Unknown ids are
	// ignored.
	DisabledRules []string `toml:"disabled_rules"`

	enabled  map[diag.Code]bool
	disabled map[diag.Code]bool
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{
		IndentWidth:   2,
		MaxLineLength: 80,
		QuoteStyle:    QuoteEither,
	}
	cfg.normalize()
	return cfg
}

// Load reads a TOML configuration file and fills defaults for options
// it leaves out.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	// Distinguish "absent" from an explicit 0 for max_line_length.
	if !meta.IsDefined("max_line_length") {
		cfg.MaxLineLength = 80
	}
	if !meta.IsDefined("indent_width") {
		cfg.IndentWidth = 2
	}
	if cfg.QuoteStyle == "" {
		cfg.QuoteStyle = QuoteEither
	}
	switch cfg.QuoteStyle {
	case QuoteSingle, QuoteDouble, QuoteEither:
	default:
		return nil, fmt.Errorf("load config %s: unknown quote_style %q", path, cfg.QuoteStyle)
	}
	cfg.normalize()
	return cfg, nil
}

// Discover walks from dir upward looking for a config file. Returns
// the defaults when none exists.
func Discover(dir string) (*Config, error) {
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// normalize resolves rule id lists into code sets. Ids that match no
// known rule are dropped silently.
func (c *Config) normalize() {
	c.enabled = make(map[diag.Code]bool, len(c.EnabledRules))
	for _, id := range c.EnabledRules {
		if code, ok := diag.CodeForID(id); ok {
			c.enabled[code] = true
		}
	}
	c.disabled = make(map[diag.Code]bool, len(c.DisabledRules))
	for _, id := range c.DisabledRules {
		if code, ok := diag.CodeForID(id); ok {
			c.disabled[code] = true
		}
	}
}

// RuleEnabled reports whether a rule should run: listed in
// enabled_rules when that list is non-empty, and not disabled.
func (c *Config) RuleEnabled(code diag.Code) bool {
	if c.disabled[code] {
		return false
	}
	if len(c.enabled) == 0 {
		return true
	}
	return c.enabled[code]
}

// Digest returns a stable fingerprint of the options that affect lint
// output, for cache keying.
func (c *Config) Digest() string {
	return fmt.Sprintf("iw=%d;mll=%d;qs=%s;en=%v;dis=%v",
		c.IndentWidth, c.MaxLineLength, c.QuoteStyle, c.EnabledRules, c.DisabledRules)
}
