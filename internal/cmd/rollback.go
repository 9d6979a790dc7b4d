package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/tugboat/internal/lock"
	"github.com/cameronsjo/tugboat/internal/manifest"
	"github.com/cameronsjo/tugboat/internal/snapshot"
	"github.com/cameronsjo/tugboat/internal/ui"
)

var (
	rollbackRegion string
	rollbackList   bool
)

// rollbackCmd restores a region's manifests from a snapshot.
var rollbackCmd = &cobra.Command{
	Use:   "rollback [snapshot]",
	Short: "Restore a region's manifests from a snapshot",
	Long: `Every render and pki run saves the region's previous manifests as a snapshot
before writing. rollback restores one, the newest by default. The manifests
being replaced are saved as a snapshot first.

Examples:
  tugboat rollback --region atl01 --list        # List snapshots
  tugboat rollback --region atl01               # Restore the newest
  tugboat rollback --region atl01 snapshot-...  # Restore a specific one`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRollback,
}

func init() {
	rollbackCmd.Flags().StringVar(&rollbackRegion, "region", "", "Site name (default from config)")
	rollbackCmd.Flags().BoolVarP(&rollbackList, "list", "l", false, "List snapshots instead of restoring")

	rootCmd.AddCommand(rollbackCmd)
}

func runRollback(cmd *cobra.Command, args []string) error {
	region := rollbackRegion
	if region == "" {
		region = cfg.Region
	}
	if region == "" {
		return errors.New("region required (use --region or set region in tugboat.yaml)")
	}
	if err := manifest.ValidateRegion(region); err != nil {
		return err
	}

	store := snapshot.New(cfg.OutputDir, region)
	out := cmd.OutOrStdout()

	if rollbackList {
		snapshots, err := store.List()
		if err != nil {
			return err
		}
		if len(snapshots) == 0 {
			fmt.Fprintf(out, "No snapshots for %s\n", region)
			return nil
		}
		ui.Bold.Fprintf(out, "Snapshots for %s (newest first):\n", region)
		for _, snap := range snapshots {
			fmt.Fprintf(out, "  %s  %s  (%d files)\n", snap.Name, snap.Created.Format("2006-01-02 15:04:05"), snap.FileCount)
		}
		return nil
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		latest, err := store.Latest()
		if err != nil {
			return err
		}
		name = latest.Name
	}

	siteDir := manifest.SiteDir(cfg.OutputDir, region)
	err := lock.WithLock(cfg.OutputDir, "write", func() error {
		return store.Restore(name, siteDir)
	})
	if err != nil {
		return fmt.Errorf("rollback %s: %w", region, err)
	}

	ui.Green.Fprintf(out, "✓ restored %s from %s\n", siteDir, name)
	return nil
}
