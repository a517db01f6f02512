// Package app contains the Cobra command tree for gcrs.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greencloud/gcrs/internal/config"
	"github.com/greencloud/gcrs/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "gcrs",
	Short: "Inventory the contents of a source-code repository",
	Long: `gcrs walks a repository tree, classifies every file by language,
category, data type, binary-ness, and dependency role, and aggregates the
results into a structured summary. It never parses file contents beyond an
optional first-line shebang peek.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		configureLogging(cfg, flagVerbose)
		if flagNoColor {
			output.SetNoColor(true)
		} else {
			output.DetectColor()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("gcrs", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  scan      Walk a repository and classify every file")
		fmt.Println("  summary   Scan and write a repository summary file")
		fmt.Println("  serve     Expose scanning over a JSON HTTP API")
		fmt.Println("  history   List previously saved scans")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/gcrs/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
}
