package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashpack/dashpack/internal/config"
	"github.com/dashpack/dashpack/internal/locator"
	"github.com/dashpack/dashpack/internal/pipeline"
	"github.com/dashpack/dashpack/internal/report"
	"github.com/dashpack/dashpack/internal/validator"
)

var (
	locateJSON   bool
	validateJSON bool
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Find expected asset files across the configured search roots",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return formatRunError("CONFIG_LOAD_FAILED", err, "check ~/.dashpack/config.json")
		}
		cat := pipeline.CatalogFromConfig(cfg)
		res := locator.New(cfg.Paths.SearchRoots, newLogger()).Locate(cat)

		if locateJSON {
			data, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		for _, f := range res.Found {
			fmt.Fprintf(cmd.OutOrStdout(), "+ %s/%s -> %s\n", f.Category, f.Name, f.Path)
		}
		for _, m := range res.Missing {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s/%s missing\n", m.Category, m.Name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Found %d/%d expected files\n", len(res.Found), cat.Len())
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Locate assets and compute sizes, hashes, and the pass/fail verdict",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return formatRunError("CONFIG_LOAD_FAILED", err, "check ~/.dashpack/config.json")
		}
		log := newLogger()
		cat := pipeline.CatalogFromConfig(cfg)
		loc := locator.New(cfg.Paths.SearchRoots, log).Locate(cat)
		res := validator.Validate(loc, cat.Len(), log)

		if validateJSON {
			data, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		} else {
			report.Pretty(cmd.OutOrStdout(), res)
		}
		if !res.Passed {
			return formatRunError("VALIDATION_FAILED",
				fmt.Errorf("missing minimal assets (need index.html plus css and js files)"),
				"run `dashpack locate` to see what is missing")
		}
		return nil
	},
}

func init() {
	locateCmd.Flags().BoolVar(&locateJSON, "json", false, "Output JSON")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output JSON")
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(validateCmd)
}
