package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/tugboat/internal/manifest"
	"github.com/cameronsjo/tugboat/internal/ui"
)

var (
	renderSpec   string
	renderRegion string
	renderDryRun bool
)

// renderCmd renders site manifests from a workbook.
var renderCmd = &cobra.Command{
	Use:   "render <workbook>",
	Short: "Render site manifests from a workbook",
	Long: `Extract site data from a workbook and render every configured site template
into <output>/site/<region>.

Examples:
  tugboat render site.xlsx --region atl01      # Write manifests
  tugboat render site.xlsx --region atl01 -n   # Dry run - print manifests`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderSpec, "spec", "s", "", "Spec catalog file (default from config)")
	renderCmd.Flags().StringVar(&renderRegion, "region", "", "Site name used in output paths (default from config)")
	renderCmd.Flags().BoolVarP(&renderDryRun, "dry-run", "n", false, "Print manifests instead of writing them")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	region := renderRegion
	if region == "" {
		region = cfg.Region
	}
	if region == "" {
		return errors.New("region required (use --region or set region in tugboat.yaml)")
	}

	data, err := extract(args[0], specFile(renderSpec))
	if err != nil {
		return err
	}

	renderer := manifest.NewRenderer(cfg.TemplatesDir)
	for _, name := range cfg.SiteTemplates {
		if _, source, err := renderer.Source(manifest.KindSite, name); err == nil {
			ui.Debug("template %s from %s", name, source)
		}
	}

	rendered, err := renderer.RenderSite(cfg.SiteTemplates, region, data, cfg.OutputDir)
	if err != nil {
		return err
	}

	return emit(cmd.OutOrStdout(), rendered, renderDryRun, region)
}
