// Package cmd - reference data commands
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// referenceCmd groups reference-table operations
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Inspect published reference tables",
}

var referenceVersionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List published reference table versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openReferenceStore()
		if err != nil {
			return err
		}
		for _, v := range store.Versions() {
			fmt.Println(v)
		}
		return nil
	},
}

var referenceShowCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Show the indicators of a reference table version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openReferenceStore()
		if err != nil {
			return err
		}

		version := ""
		if len(args) > 0 {
			version = args[0]
		}
		tbl, err := store.Resolve(version)
		if err != nil {
			return err
		}

		fmt.Printf("Version:      %s\n", tbl.Version())
		fmt.Printf("Published:    %s\n", tbl.Published())
		fmt.Printf("Content hash: %s\n\n", tbl.ContentHash())

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "INDICADOR\tVALOR\tUNIDADE\tFONTE")
		for _, key := range tbl.Keys() {
			ind, err := tbl.Indicator(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ind.Key, ind.Value.String(), ind.Unit, ind.Source)
		}
		return w.Flush()
	},
}

func init() {
	referenceCmd.AddCommand(referenceVersionsCmd)
	referenceCmd.AddCommand(referenceShowCmd)
}
