package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zeth/jscodestyle/internal/diagfmt"
	"github.com/zeth/jscodestyle/internal/driver"
	"github.com/zeth/jscodestyle/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Dump the annotated token stream of a JavaScript file",
	Long:  `Tokenize breaks a JavaScript source file into its lossless token stream, with the nesting depth and statement role of every token`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	result, err := driver.TokenizeFile(fs, args[0], driver.Options{MaxDiagnostics: maxDiagnostics})
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}

	if result.Bag.Len() > 0 {
		color, err := useColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: color})
	}
	if result.Fatal != nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("tokenize: %w", result.Fatal)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Stream, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Stream)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
