package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashpack/dashpack/internal/config"
	"github.com/dashpack/dashpack/internal/pipeline"
)

var (
	reportStdout bool
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the text validation report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return formatRunError("CONFIG_LOAD_FAILED", err, "check ~/.dashpack/config.json")
		}
		if reportOutput != "" {
			cfg.Paths.ReportPath = reportOutput
		}
		res := pipeline.Run(cfg, pipeline.Options{WriteReport: !reportStdout}, newLogger())
		if res.Error != "" {
			return formatRunError("RUN_FAILED", fmt.Errorf("%s", res.Error), "rerun with --verbose for per-file details")
		}
		if reportStdout {
			fmt.Fprint(cmd.OutOrStdout(), res.Report)
			return nil
		}
		if res.ReportPath == "" {
			return formatRunError("REPORT_WRITE_FAILED",
				fmt.Errorf("report file was not written"),
				"check write permissions for the report path")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written: %s\n", res.ReportPath)
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportStdout, "stdout", false, "Print the report instead of writing the file")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Report file path (defaults to config)")
	rootCmd.AddCommand(reportCmd)
}
