// Package cmd provides the CLI commands for visia.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"visia/core/reference"
	"visia/core/results"
	"visia/internal/config"
	"visia/internal/logging"
)

// Version is the CLI version, overridable at build time.
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "visia",
	Short: "Evaluate the social impact of investment projects",
	Long: `visia scores social-impact projects against versioned public reference
data and issues reproducible, hash-verified results.

Examples:
  visia evaluate projeto.json
  visia evaluate --format markdown --store projeto.json
  visia report 3f9a1c...
  visia reference versions`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.visia/visia.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// openReferenceStore loads the embedded table plus any published versions
// from the configured directory.
func openReferenceStore() (*reference.Store, error) {
	store := reference.NewStore()
	if dir := config.Get().Reference.Dir; dir != "" {
		if err := store.LoadDir(dir); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func openResultStore() (*results.Store, error) {
	return results.NewStore(config.Get().Storage.Dir)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("visia version %s (reference table %s)\n", Version, reference.DefaultVersion)
	},
}
