package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cameronsjo/tugboat/internal/fileutil"
	"github.com/cameronsjo/tugboat/internal/parser"
	"github.com/cameronsjo/tugboat/internal/ui"
)

var (
	parseSpec   string
	parseOutput string
	parseFormat string
)

// parseCmd extracts site data from a workbook.
var parseCmd = &cobra.Command{
	Use:   "parse <workbook>",
	Short: "Extract site data from a workbook",
	Long: `Resolve the layout specification for a workbook and extract its site data.

The result is printed to stdout, or written to --output.

Examples:
  tugboat parse site.xlsx                  # YAML to stdout
  tugboat parse site.xlsx -o site.yaml     # Write an intermediary file
  tugboat parse site.xlsx --format json    # JSON instead of YAML
  tugboat parse site.xlsx -s specs.yaml    # Use another spec catalog`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseSpec, "spec", "s", "", "Spec catalog file (default from config)")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Write site data to this file")
	parseCmd.Flags().StringVar(&parseFormat, "format", "yaml", "Output format: yaml or json")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseFormat != "yaml" && parseFormat != "json" {
		return fmt.Errorf("unknown format %q (want yaml or json)", parseFormat)
	}

	data, err := extract(args[0], specFile(parseSpec))
	if err != nil {
		return err
	}

	out, err := encodeSiteData(data, parseFormat)
	if err != nil {
		return err
	}

	if parseOutput == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}

	if err := fileutil.WriteFile(parseOutput, out, 0644); err != nil {
		return fmt.Errorf("write site data: %w", err)
	}
	ui.Success("Wrote site data to %s", parseOutput)
	return nil
}

func encodeSiteData(data *parser.SiteData, format string) ([]byte, error) {
	if format == "json" {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(out, '\n'), nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}
