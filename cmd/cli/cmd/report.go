// Package cmd - report and projects commands
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"visia/core/report"
	"visia/internal/config"
)

var (
	reportFormat     string
	reportComponents bool
)

// reportCmd re-renders a stored evaluation
var reportCmd = &cobra.Command{
	Use:   "report <hash>",
	Short: "Render the report for a stored result",
	Long: `Render the report for a result previously stored with evaluate --store.

Examples:
  visia report 3f9a1c0d2e4b5a69
  visia report --format certificate 3f9a1c0d2e4b5a69`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "report format (text, json, markdown, certificate)")
	reportCmd.Flags().BoolVarP(&reportComponents, "components", "c", false, "show per-dimension component breakdown")
}

func runReport(cmd *cobra.Command, args []string) error {
	store, err := openResultStore()
	if err != nil {
		return err
	}

	rec, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	cfg := config.Get()
	format := reportFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := report.New(report.Format(format))
	if err != nil {
		return err
	}

	return formatter.Render(os.Stdout, rec, report.Options{
		EmittedAt:      time.Now().UTC(),
		ShowComponents: reportComponents || cfg.Output.ShowComponents,
	})
}

// projectsCmd lists stored results
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List stored evaluation results",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openResultStore()
		if err != nil {
			return err
		}

		list := store.List()
		if len(list) == 0 {
			fmt.Println("No stored results.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "HASH\tPROJETO\tMETODOLOGIA\tCLASSE\tARMAZENADO")
		for _, meta := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				meta.Hash[:16], meta.Project, meta.Methodology,
				meta.Classification, meta.StoredAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
