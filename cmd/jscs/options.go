package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zeth/jscodestyle/internal/config"
	"github.com/zeth/jscodestyle/internal/diagfmt"
	"github.com/zeth/jscodestyle/internal/driver"
)

const configFileName = config.FileName

// resolveConfig loads the configuration: an explicit --config path
// wins, otherwise discovery walks up from the first target path.
func resolveConfig(cmd *cobra.Command, targets []string) (*config.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	if explicit != "" {
		return config.Load(explicit)
	}

	dir := "."
	if len(targets) > 0 {
		dir = targets[0]
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			dir = filepath.Dir(dir)
		}
	}
	return config.Discover(dir)
}

func driverOptions(cmd *cobra.Command, cfg *config.Config) (driver.Options, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, err
	}
	return driver.Options{Config: cfg, MaxDiagnostics: maxDiagnostics}, nil
}

func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("unknown color value: %s", colorFlag)
	}
}

func pathModeFromFlags(cmd *cobra.Command) (diagfmt.PathMode, error) {
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return diagfmt.PathModeAuto, err
	}
	if fullPath {
		return diagfmt.PathModeAbsolute, nil
	}
	return diagfmt.PathModeAuto, nil
}
