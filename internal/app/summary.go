package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/greencloud/gcrs/internal/config"
	"github.com/greencloud/gcrs/internal/inventory"
	"github.com/greencloud/gcrs/internal/output"
	"github.com/greencloud/gcrs/internal/report"
)

var (
	summaryFlagOutDir  string
	summaryFlagOutFile string
	summaryFlagJSON    bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary [root]",
	Short: "Scan and write a repository summary file",
	Long: `Summary runs a summary-only scan and persists the aggregated result
as a JSON file in the output directory (relative paths resolve against the
scanned repository root).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFlagOutDir, "out-dir", "", "Output directory (default: config output_dir)")
	summaryCmd.Flags().StringVar(&summaryFlagOutFile, "out-file", "", "Output filename (default: <repo>_<timestamp>.summary.json)")
	summaryCmd.Flags().BoolVar(&summaryFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root := cfg.ScanRoot
	if len(args) > 0 {
		root = args[0]
	}

	opts, err := scanOptions(cfg)
	if err != nil {
		return err
	}
	opts.SummaryOnly = true

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := inventory.Scan(ctx, root, opts)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}

	outDir := summaryFlagOutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(res.Root, outDir)
	}
	if err := report.EnsureDir(outDir); err != nil {
		return err
	}

	name := summaryFlagOutFile
	if name == "" {
		name = report.DefaultFilename(res.Root, time.Now())
	}
	outPath := filepath.Join(outDir, name)
	if err := report.Write(outPath, res.Summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if summaryFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"summary_file": outPath,
			"summary":      res.Summary,
			"incomplete":   res.Incomplete,
		})
	}

	renderSummary(res)
	fmt.Printf(" %s %s\n\n",
		output.StyleLabel.Render("Summary written:"),
		outPath)
	return nil
}
