package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/tugboat/internal/parser"
	"github.com/cameronsjo/tugboat/internal/ui"
)

var (
	validateSpec string
	validateFull bool
)

// validateCmd reports which specification matches a workbook.
var validateCmd = &cobra.Command{
	Use:   "validate <workbook>",
	Short: "Report which specification matches a workbook",
	Long: `Resolve the layout specification for a workbook without extracting it.

With --full every extractor also runs, so missing cells and unknown VLANs
are reported before rendering.

Examples:
  tugboat validate site.xlsx           # Which spec matches?
  tugboat validate site.xlsx --full    # Also check every cell`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateSpec, "spec", "s", "", "Spec catalog file (default from config)")
	validateCmd.Flags().BoolVar(&validateFull, "full", false, "Also run every extractor")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	return withParser(args[0], specFile(validateSpec), func(p *parser.Parser) error {
		rs, err := p.Resolve()
		if err != nil {
			return err
		}

		ui.Green.Fprintf(out, "✓ %s matches spec %s\n", args[0], rs.Name)
		ui.Cyan.Fprint(out, "  ipmi sheet: ")
		fmt.Fprintln(out, rs.IPMISheet)

		if !validateFull {
			return nil
		}

		data, err := p.GetData()
		if err != nil {
			return err
		}
		ui.Green.Fprintf(out, "✓ extracted %d hosts and %d private networks\n",
			len(data.IPMIData.Hosts), len(data.NetworkData.Private))
		return nil
	})
}
