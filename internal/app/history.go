package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greencloud/gcrs/internal/config"
	"github.com/greencloud/gcrs/internal/output"
	"github.com/greencloud/gcrs/internal/store"
)

var (
	historyFlagLimit int
	historyFlagJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously saved scans",
	Long: `History lists scans recorded with 'scan --save', newest first, with
the change in file counts against the previous scan of the same root.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 20, "Maximum number of scans to list")
	historyCmd.Flags().BoolVar(&historyFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	scans, err := db.ListScans(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing scans: %w", err)
	}

	if historyFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scans)
	}

	if len(scans) == 0 {
		fmt.Println(output.StyleMuted.Render("No saved scans. Run 'gcrs scan --save' first."))
		return nil
	}

	fmt.Println(output.Section("Scan History"))
	fmt.Println()

	// Previous totals per root, for delta columns. Scans arrive newest
	// first, so walk from the oldest end.
	prevTotal := map[string]int{}
	deltas := make([]string, len(scans))
	for i := len(scans) - 1; i >= 0; i-- {
		s := scans[i]
		if prev, ok := prevTotal[s.Root]; ok {
			deltas[i] = output.TrendArrow(s.TotalFiles - prev)
		} else {
			deltas[i] = output.StyleMuted.Render("─")
		}
		prevTotal[s.Root] = s.TotalFiles
	}

	tbl := output.NewTable("When", "Root", "Scanned", "Skipped", "Δ Total", "")
	for i, s := range scans {
		status := ""
		if s.Incomplete {
			status = output.StyleWarning.Render("partial")
		}
		tbl.AddRow(
			s.TakenAt.Local().Format(time.DateTime),
			s.Root,
			fmt.Sprintf("%d", s.ScannedFiles),
			fmt.Sprintf("%d", s.SkippedFiles),
			deltas[i],
			status,
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}
