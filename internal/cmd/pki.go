package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/tugboat/internal/manifest"
	"github.com/cameronsjo/tugboat/internal/ui"
)

var pkiDryRun bool

// pkiCmd renders PKI manifests from a site definition.
var pkiCmd = &cobra.Command{
	Use:   "pki <site-definition>...",
	Short: "Render PKI manifests from a site definition",
	Long: `Read a site definition file, collect its hosts across every rack and render
each configured PKI template into <output>/site/<region_name>/pki.

The site definition needs region_name, and hosts grouped by rack under
baremetal. network.ingress is passed through when present. With several
files, each is deep-merged over the ones before it; a null value removes
a key.

Examples:
  tugboat pki site-definition.yaml              # Write PKI manifests
  tugboat pki site-definition.yaml -n           # Dry run - print manifests
  tugboat pki base.yaml atl01.yaml              # Layer a site over a base`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPKI,
}

func init() {
	pkiCmd.Flags().BoolVarP(&pkiDryRun, "dry-run", "n", false, "Print manifests instead of writing them")

	rootCmd.AddCommand(pkiCmd)
}

func runPKI(cmd *cobra.Command, args []string) error {
	site, err := manifest.LoadSiteDefinition(args...)
	if err != nil {
		return err
	}

	proc := manifest.NewPKIProcessor(site, manifest.NewRenderer(cfg.TemplatesDir))

	if ui.Verbose() {
		ctx := proc.Context()
		hosts := make([]string, 0, len(ctx.Hosts))
		for host := range ctx.Hosts {
			hosts = append(hosts, host)
		}
		sort.Strings(hosts)
		for _, name := range cfg.PKITemplates {
			ui.Debug("pki template %s: region=%s ingress=%v hosts=%v", name, ctx.Region, ctx.Ingress, hosts)
		}
	}

	rendered, err := proc.Render(cfg.PKITemplates, cfg.OutputDir)
	if err != nil {
		return err
	}

	return emit(cmd.OutOrStdout(), rendered, pkiDryRun, site.RegionName)
}
