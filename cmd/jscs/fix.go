package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zeth/jscodestyle/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.js|directory>...",
	Short: "Rewrite JavaScript files to fix style violations",
	Long:  "Run the style checker and apply every always-safe fix in place. Violations without a safe fix are reported but left alone.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing files")
	fixCmd.Flags().Bool("diff-stat", false, "print per-file applied/skipped fix counts")
}

func runFix(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	diffStat, err := cmd.Flags().GetBool("diff-stat")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}

	files, err := driver.CollectFiles(args)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stdout, "No JavaScript files found.")
		}
		return nil
	}

	changed, failed := 0, 0
	for _, path := range files {
		res, err := driver.FixFile(path, opts, dryRun)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "jscs: %s: %v\n", path, err)
			continue
		}
		if res.Lint.Fatal != nil {
			failed++
			fmt.Fprintf(os.Stderr, "jscs: %s: %v\n", path, res.Lint.Fatal)
			continue
		}
		if !res.Changed {
			continue
		}
		changed++
		if quiet {
			continue
		}
		verb := "fixed"
		if dryRun {
			verb = "would fix"
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", verb, path)
		if diffStat {
			fmt.Fprintf(os.Stdout, "  %d fix(es) applied, %d skipped\n", len(res.Applied), len(res.Skipped))
		}
	}

	if !quiet {
		verb := "rewrote"
		if dryRun {
			verb = "would rewrite"
		}
		fmt.Fprintf(os.Stdout, "%s %d of %d file(s)\n", verb, changed, len(files))
	}
	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("fix: %d file(s) failed", failed)
	}
	return nil
}
