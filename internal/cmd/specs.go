package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cameronsjo/tugboat/internal/ui"
)

var specsSpec string

// specsCmd lists the spec catalog.
var specsCmd = &cobra.Command{
	Use:   "specs [name]",
	Short: "List specifications in declaration order",
	Long: `List every specification in the catalog. Workbooks are matched against them
in this order and the first that validates wins.

With a name, print that specification's fields.

Examples:
  tugboat specs               # List spec names
  tugboat specs xl_spec_v1    # Show one spec`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSpecs,
}

func init() {
	specsCmd.Flags().StringVarP(&specsSpec, "spec", "s", "", "Spec catalog file (default from config)")

	rootCmd.AddCommand(specsCmd)
}

func runSpecs(cmd *cobra.Command, args []string) error {
	path := specFile(specsSpec)
	catalog, err := loadCatalog(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		spec, ok := catalog.Get(args[0])
		if !ok {
			return fmt.Errorf("spec %q not found in %s", args[0], path)
		}
		content, err := yaml.Marshal(spec)
		if err != nil {
			return fmt.Errorf("encode spec: %w", err)
		}
		_, err = out.Write(content)
		return err
	}

	ui.Bold.Fprintf(out, "Specifications in %s:\n", path)
	for i, entry := range catalog.Entries() {
		fmt.Fprintf(out, "  %d. %s\n", i+1, entry.Name)
		if verbose {
			ui.Faint.Fprintf(out, "     sheet %q, header %q at row %d col %d\n",
				entry.Spec.IPMISheetName, entry.Spec.IPMIAddressHeader,
				entry.Spec.HeaderRow, entry.Spec.IPMIAddressCol)
		}
	}
	return nil
}
