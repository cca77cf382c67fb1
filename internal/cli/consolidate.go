package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashpack/dashpack/internal/config"
	"github.com/dashpack/dashpack/internal/consolidate"
	"github.com/dashpack/dashpack/internal/locator"
	"github.com/dashpack/dashpack/internal/pipeline"
)

var (
	consolidateJSON   bool
	consolidateOutput string
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Copy located assets into the consolidated output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return formatRunError("CONFIG_LOAD_FAILED", err, "check ~/.dashpack/config.json")
		}
		if consolidateOutput != "" {
			cfg.Paths.OutputDir = consolidateOutput
		}
		log := newLogger()
		cat := pipeline.CatalogFromConfig(cfg)
		loc := locator.New(cfg.Paths.SearchRoots, log).Locate(cat)
		res, err := consolidate.Run(loc.Found, cfg.Paths.OutputDir, log)
		if err != nil {
			return formatRunError("CONSOLIDATE_FAILED", err, "check the output directory path and permissions")
		}
		if consolidateJSON {
			data, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Consolidated %d file(s) into %s\n", len(res.Copied), res.OutputDir)
		for _, s := range res.Skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "skipped %s: %s\n", s.Source, s.Reason)
		}
		return nil
	},
}

func init() {
	consolidateCmd.Flags().BoolVar(&consolidateJSON, "json", false, "Output JSON")
	consolidateCmd.Flags().StringVarP(&consolidateOutput, "output", "o", "", "Output directory (defaults to config)")
	rootCmd.AddCommand(consolidateCmd)
}
