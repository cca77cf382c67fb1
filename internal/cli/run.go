package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashpack/dashpack/internal/config"
	"github.com/dashpack/dashpack/internal/pipeline"
	"github.com/dashpack/dashpack/internal/report"
)

var (
	runJSON        bool
	runConsolidate bool
	runNoReport    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Locate, validate, report, and optionally consolidate dashboard assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return formatRunError("CONFIG_LOAD_FAILED", err, "check ~/.dashpack/config.json")
		}
		opts := pipeline.Options{
			Consolidate: cfg.Consolidate.Enabled || runConsolidate,
			WriteReport: !runNoReport,
		}
		res := pipeline.Run(cfg, opts, newLogger())

		if runJSON {
			data, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		} else {
			report.Pretty(cmd.OutOrStdout(), res.Validation)
			if res.ReportPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written: %s\n", res.ReportPath)
			}
			if res.Copy != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Consolidated %d file(s) into %s (%d skipped)\n",
					len(res.Copy.Copied), res.Copy.OutputDir, len(res.Copy.Skipped))
			}
		}
		if res.Error != "" {
			return formatRunError("RUN_FAILED", fmt.Errorf("%s", res.Error), "rerun with --verbose for per-file details")
		}
		if !res.Validation.Passed {
			return formatRunError("VALIDATION_FAILED",
				fmt.Errorf("missing minimal assets (need index.html plus css and js files)"),
				"check search roots in config or pass the assets' directory")
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Output JSON")
	runCmd.Flags().BoolVar(&runConsolidate, "consolidate", false, "Copy found files into the output directory")
	runCmd.Flags().BoolVar(&runNoReport, "no-report", false, "Skip writing the text report file")
	rootCmd.AddCommand(runCmd)
}
