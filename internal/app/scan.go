package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	"github.com/greencloud/gcrs/internal/config"
	"github.com/greencloud/gcrs/internal/inventory"
	"github.com/greencloud/gcrs/internal/output"
	"github.com/greencloud/gcrs/internal/store"
)

var (
	scanFlagSummaryOnly bool
	scanFlagWorkers     int
	scanFlagShebang     bool
	scanFlagSave        bool
	scanFlagJSON        bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Walk a repository and classify every file",
	Long: `Scan walks the repository tree rooted at the given directory (or the
configured default), classifies each file by language, category, data type,
binary-ness, and dependency role, and prints the aggregated summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanFlagSummaryOnly, "summary-only", false, "Discard per-file records, keep only the summary")
	scanCmd.Flags().IntVar(&scanFlagWorkers, "workers", 0, "Concurrent classification workers (0 = config default)")
	scanCmd.Flags().BoolVar(&scanFlagShebang, "shebang", false, "Enable first-line shebang language fallback")
	scanCmd.Flags().BoolVar(&scanFlagSave, "save", false, "Record this scan in the history database")
	scanCmd.Flags().BoolVar(&scanFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
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
	opts.SummaryOnly = scanFlagSummaryOnly
	if scanFlagShebang {
		opts.ShebangFallback = true
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := inventory.Scan(ctx, root, opts)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}

	if scanFlagSave {
		db, err := store.Open(config.DBPath())
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer db.Close()
		if _, err := db.SaveScan(res.Root, appVersion, res.Summary, res.Incomplete); err != nil {
			return fmt.Errorf("saving scan: %w", err)
		}
	}

	if scanFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	renderSummary(res)
	return nil
}

// scanOptions builds engine options from configuration: custom tables,
// extra denylisted directories, and the worker count.
func scanOptions(cfg *config.Config) (inventory.Options, error) {
	tables := inventory.DefaultTables()
	if cfg.TablesFile != "" {
		var err error
		tables, err = inventory.LoadTables(cfg.TablesFile)
		if err != nil {
			return inventory.Options{}, err
		}
	}
	for _, dir := range cfg.ExtraSkipDirs {
		tables.SkipDirs[dir] = struct{}{}
	}

	workers := cfg.Workers
	if scanFlagWorkers > 0 {
		workers = scanFlagWorkers
	}

	return inventory.Options{
		Tables:          tables,
		ShebangFallback: cfg.ShebangFallback,
		Workers:         workers,
	}, nil
}

func renderSummary(res *inventory.Result) {
	sum := res.Summary

	fmt.Println(output.Section("Repository Inventory"))
	fmt.Println()
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Root:"), res.Root)
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Scanned files:"),
		output.StyleValue.Render(fmt.Sprintf("%d", sum.ScannedFiles)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Skipped files:"),
		output.StyleValue.Render(fmt.Sprintf("%d", sum.SkippedFiles)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Without extension:"),
		output.StyleValue.Render(fmt.Sprintf("%d", sum.FilesWithoutExtension)))
	if res.Incomplete {
		fmt.Printf(" %s\n", output.StyleWarning.Render("Scan cancelled before completion; counts are partial."))
	}

	renderHistogram("Languages", sum.FilesByLanguage)
	renderHistogram("Categories", sum.FilesByCategory)
	renderHistogram("Dependency manifests", sum.FilesByDependency)
	renderHistogram("Data files", sum.FilesByDataType)
	renderHistogram("Binary files", sum.BinaryFilesByExtension)
	fmt.Println()
}

// renderHistogram prints one histogram as a bucket table with
// proportional bars, largest buckets first.
func renderHistogram(title string, hist map[string]int) {
	if len(hist) == 0 {
		return
	}

	type bucket struct {
		name  string
		count int
	}
	buckets := make([]bucket, 0, len(hist))
	max := 0
	for name, count := range hist {
		buckets = append(buckets, bucket{name, count})
		if count > max {
			max = count
		}
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].name < buckets[j].name
	})

	fmt.Println(output.Section(title))
	fmt.Println()
	tbl := output.NewTable("Bucket", "Files")
	for _, b := range buckets {
		tbl.AddRow(b.name, output.CountBar(b.count, max, 20))
	}
	tbl.Print()
}
