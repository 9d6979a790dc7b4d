// Package cmd provides the CLI commands for tugboat.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/tugboat/internal/config"
	"github.com/cameronsjo/tugboat/internal/ui"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noColor bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tugboat",
	Short: "Site survey workbooks to deployment manifests",
	Long: `tugboat - site survey workbooks to deployment manifests

Reads a site survey workbook, picks the layout specification that matches it,
extracts hosts, networks and name services, and renders site manifests.

WORKBOOK COMMANDS
  parse <workbook>      Extract site data as YAML or JSON
    --output, -o <file> Write to a file instead of stdout
    --format <fmt>      yaml (default) or json
  render <workbook>     Render site manifests from a workbook
    --region <name>     Site name used in output paths
    --dry-run, -n       Print manifests instead of writing them
  validate <workbook>   Report which specification matches
    --full              Also run every extractor

SITE COMMANDS
  pki <site.yaml>...    Render PKI manifests from site definitions
  rollback [snapshot]   Restore a region's manifests from a snapshot
    --list, -l          List snapshots

CATALOG COMMANDS
  specs [name]          List specifications in declaration order

SETUP
  init [directory]      Create a tugboat project`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.Configure(verbose, noColor)

		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		if cfg.Root != "" {
			ui.Debug("config root: %s", cfg.Root)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to "+config.FileName+" (default: searched upward)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate("tugboat version {{.Version}}\n")
}
