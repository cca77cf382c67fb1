package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dashpack/dashpack/internal/config"
	"github.com/dashpack/dashpack/internal/history"
)

var (
	historyJSON  bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent validation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return formatRunError("CONFIG_LOAD_FAILED", err, "check ~/.dashpack/config.json")
		}
		if !cfg.History.Enabled {
			return formatRunError("HISTORY_DISABLED",
				fmt.Errorf("run history is disabled in config"),
				"set history.enabled=true in ~/.dashpack/config.json")
		}
		store, err := history.Open(cfg.History.DBPath)
		if err != nil {
			return formatRunError("HISTORY_OPEN_FAILED", err, "check the history dbPath in config")
		}
		defer store.Close()

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return formatRunError("HISTORY_QUERY_FAILED", err, "delete the history db to reset it")
		}
		if historyJSON {
			data, _ := json.MarshalIndent(entries, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Columns: time | run | verdict | found/missing/skipped | copied")
		for _, e := range entries {
			verdict := "FAIL"
			if e.Passed {
				verdict = "PASS"
			}
			if e.ErrorText != "" {
				verdict = "ERROR"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "- %s | %s | %s | %d/%d/%d | %d\n",
				e.StartedAt.Local().Format(time.RFC3339), shortRunID(e.RunID), verdict,
				e.FoundCount, e.MissingCount, e.SkippedCount, e.CopiedCount)
		}
		return nil
	},
}

func shortRunID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output JSON")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum runs to list")
	rootCmd.AddCommand(historyCmd)
}
