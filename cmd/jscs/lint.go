package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zeth/jscodestyle/internal/diag"
	"github.com/zeth/jscodestyle/internal/diagfmt"
	"github.com/zeth/jscodestyle/internal/driver"
	"github.com/zeth/jscodestyle/internal/ui"
	"github.com/zeth/jscodestyle/internal/version"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <file.js|directory>...",
	Short: "Check JavaScript files for style violations",
	Long:  `Check JavaScript source files against the style guide and report every violation with its location`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	lintCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	lintCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	lintCmd.Flags().Bool("summary", false, "print a per-rule violation summary")
	lintCmd.Flags().Bool("progress", false, "show a live progress display (pretty format only)")
	lintCmd.Flags().Bool("disk-cache", false, "skip re-checking unchanged clean files")
	lintCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	lintCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	showSummary, err := cmd.Flags().GetBool("summary")
	if err != nil {
		return err
	}
	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return err
	}
	enableCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	pathMode, err := pathModeFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}
	if enableCache {
		cache, err := driver.OpenDiskCache("jscs")
		if err != nil {
			return fmt.Errorf("lint: %w", err)
		}
		opts.Cache = cache
	}

	files, err := driver.CollectFiles(args)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stdout, "No JavaScript files found.")
		}
		return nil
	}

	var results []*driver.LintResult
	if showProgress && format == "pretty" && isTerminal(os.Stdout) {
		results, err = lintWithUI(cmd, files, opts, jobs)
	} else {
		results, err = driver.LintFiles(cmd.Context(), files, opts, jobs)
	}
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}

	exit := 0
	for _, r := range results {
		r.Bag.Sort()
		if !r.Clean() {
			exit = 1
		}
	}

	color, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		prettyOpts := diagfmt.PrettyOpts{
			Color:     color,
			PathMode:  pathMode,
			ShowNotes: withNotes,
			ShowFixes: suggest,
		}
		for _, r := range results {
			if r.Bag.Len() == 0 {
				continue
			}
			diagfmt.Pretty(os.Stdout, r.Bag, r.FileSet, prettyOpts)
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
			IncludeFixes:     suggest,
		}
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[r.Path] = diagfmt.BuildDiagnosticsOutput(r.Bag, r.FileSet, jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("lint: encode output: %w", err)
		}
	case "sarif":
		meta := diagfmt.SarifRunMeta{
			ToolName:    "jscs",
			ToolVersion: version.Number,
		}
		for _, r := range results {
			if err := diagfmt.Sarif(os.Stdout, r.Bag, r.FileSet, meta); err != nil {
				return fmt.Errorf("lint: encode sarif: %w", err)
			}
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if showSummary && !quiet {
		printSummary(os.Stdout, results)
	}

	if exit != 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // diagnostics already printed
	}
	return nil
}

func lintWithUI(cmd *cobra.Command, files []string, opts driver.Options, jobs int) ([]*driver.LintResult, error) {
	type outcome struct {
		results []*driver.LintResult
		err     error
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan outcome, 1)

	go func() {
		runOpts := opts
		runOpts.Progress = driver.ChannelSink{Ch: events}
		results, err := driver.LintFiles(cmd.Context(), files, runOpts, jobs)
		outcomeCh <- outcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking style", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.results, uiErr
	}
	return out.results, out.err
}

func printSummary(w *os.File, results []*driver.LintResult) {
	counts := make(map[diag.Code]int)
	files, flagged := 0, 0
	for _, r := range results {
		files++
		dirty := false
		for _, d := range r.Bag.Items() {
			if d.Code.IsStyle() {
				counts[d.Code]++
				dirty = true
			}
		}
		if dirty {
			flagged++
		}
	}

	codes := make([]diag.Code, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return counts[codes[i]] > counts[codes[j]] })

	fmt.Fprintf(w, "\n%d file(s) checked, %d with violations\n", files, flagged)
	for _, code := range codes {
		fmt.Fprintf(w, "  %5d  %s\n", counts[code], code.ID())
	}
}
