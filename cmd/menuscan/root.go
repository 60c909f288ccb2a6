package main

import (
	"github.com/spf13/cobra"

	"github.com/servline/menuscan/internal/output"
	"github.com/servline/menuscan/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "menuscan",
	Short: "Semantic analysis for OCR'd restaurant menus",
	Long: `Menuscan turns raw OCR text from restaurant menus into structured,
scored menu items.

The pipeline includes:
  - Line classification and contextual resolution
  - Grammar decomposition and component extraction
  - Size-grid tracking and price variant building
  - Cross-item consistency checks
  - Confidence scoring, review tiers, and repair recommendations`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.menuscan/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "menuscan home directory (default: ~/.menuscan)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "json", "output format: json or yaml",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.SetFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(configCmd)
}
