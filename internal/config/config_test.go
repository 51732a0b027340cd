package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zeth/jscodestyle/internal/config"
	"github.com/zeth/jscodestyle/internal/diag"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.IndentWidth != 2 || cfg.MaxLineLength != 80 || cfg.QuoteStyle != config.QuoteEither {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.RuleEnabled(diag.StyleLineTooLong) {
		t.Error("all rules enabled by default")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "indent_width = 4\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IndentWidth != 4 {
		t.Errorf("indent_width = %d", cfg.IndentWidth)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("absent max_line_length must default to 80, got %d", cfg.MaxLineLength)
	}
}

func TestExplicitZeroDisablesLineLength(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "max_line_length = 0\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxLineLength != 0 {
		t.Errorf("explicit 0 must stay 0, got %d", cfg.MaxLineLength)
	}
}

func TestDisabledRules(t *testing.T) {
	path := writeConfig(t, t.TempDir(),
		"disabled_rules = [\"line_too_long\", \"no_such_rule\"]\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RuleEnabled(diag.StyleLineTooLong) {
		t.Error("line_too_long should be disabled")
	}
	if !cfg.RuleEnabled(diag.StyleMissingSpace) {
		t.Error("other rules stay enabled")
	}
}

func TestEnabledRulesRestrict(t *testing.T) {
	path := writeConfig(t, t.TempDir(),
		"enabled_rules = [\"quote_style\", \"bogus\"]\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.RuleEnabled(diag.StyleQuote) {
		t.Error("quote_style should be enabled")
	}
	if cfg.RuleEnabled(diag.StyleLineTooLong) {
		t.Error("unlisted rules are off when enabled_rules is set")
	}
}

func TestBadQuoteStyle(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "quote_style = \"fancy\"\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected an error for unknown quote_style")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "indent_width = 8\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IndentWidth != 8 {
		t.Errorf("discover should find the root config, got %d", cfg.IndentWidth)
	}
}
