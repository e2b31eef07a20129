// Package cmd - evaluate command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"visia/core/project"
	"visia/core/report"
	"visia/core/results"
	"visia/core/score"
	"visia/internal/config"
)

var (
	outputFormat     string
	referenceVersion string
	storeResult      bool
	showComponents   bool
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [input.json]",
	Short: "Evaluate a project and print its impact report",
	Long: `Evaluate a project described by a JSON input file (or stdin with "-")
and print the resulting impact report.

Examples:
  visia evaluate projeto.json
  visia evaluate --format certificate projeto.json
  cat projeto.json | visia evaluate -`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "report format (text, json, markdown, certificate)")
	evaluateCmd.Flags().StringVarP(&referenceVersion, "reference-version", "r", "", "reference table version (default: latest)")
	evaluateCmd.Flags().BoolVarP(&storeResult, "store", "s", false, "persist the result in the write-once store")
	evaluateCmd.Flags().BoolVarP(&showComponents, "components", "c", false, "show per-dimension component breakdown")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	input, err := readInput(args[0])
	if err != nil {
		return err
	}

	refStore, err := openReferenceStore()
	if err != nil {
		return err
	}

	version := referenceVersion
	if version == "" {
		version = config.Get().Reference.ActiveVersion
	}

	evaluator := score.NewEvaluator(refStore)
	result, err := evaluator.Evaluate(ctx, input, version)
	if err != nil {
		return err
	}

	rec := &results.Record{
		Result:   result,
		Input:    input,
		StoredAt: time.Now().UTC(),
	}

	if storeResult {
		store, err := openResultStore()
		if err != nil {
			return err
		}
		if err := store.Put(ctx, rec); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Result stored: %s\n", result.Hash)
	}

	return renderRecord(rec)
}

func readInput(path string) (*project.Input, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var input project.Input
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return &input, nil
}

func renderRecord(rec *results.Record) error {
	cfg := config.Get()

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := report.New(report.Format(format))
	if err != nil {
		return err
	}

	opts := report.Options{
		EmittedAt:      time.Now().UTC(),
		ShowComponents: showComponents || cfg.Output.ShowComponents,
	}
	return formatter.Render(os.Stdout, rec, opts)
}
