package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// version can be overridden at build time via:
	// go build -ldflags "-X github.com/dashpack/dashpack/internal/cli.version=1.2.3"
	version = "1.1.0"
	logo    = "\n" +
		"     _           _                     _\n" +
		"  __| | __ _ ___| |__  _ __   __ _  __| | __\n" +
		" / _` |/ _` / __| '_ \\| '_ \\ / _` |/ _| |/ /\n" +
		"| (_| | (_| \\__ \\ | | | |_) | (_| | (_|   <\n" +
		" \\__,_|\\__,_|___/_| |_| .__/ \\__,_|\\___|_|\\_\\\n" +
		"                      |_|\n"
)

var rootCmd = &cobra.Command{
	Use:   "dashpack",
	Short: "dashpack - dashboard asset locator and consolidator",
	Long:  color.CyanString(logo) + "\nFinds expected dashboard assets across search roots, validates them, and packs them into one directory.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dashpack version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dashpack %s\n", version)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func formatRunError(code string, err error, remediation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[%s] %v. remediation: %s", strings.ToUpper(strings.TrimSpace(code)), err, remediation)
}
