package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/tugboat/internal/config"
	"github.com/cameronsjo/tugboat/internal/excelspec"
)

var workbookExts = []string{"xlsx", "xlsm"}

// completeWorkbooks completes the single workbook argument.
func completeWorkbooks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return workbookExts, cobra.ShellCompDirectiveFilterFileExt
}

// completeYAMLFiles completes YAML file names.
func completeYAMLFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeFormats completes --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix([]string{"yaml", "json"}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeRegion offers the configured region for --region.
func completeRegion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	loaded, err := config.Load(cfgFile)
	if err != nil || loaded.Region == "" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return matchPrefix([]string{loaded.Region}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeSpecNames completes spec names from the configured catalog.
func completeSpecNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	catalog, err := excelspec.Load(loaded.SpecFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return matchPrefix(catalog.Names(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func matchPrefix(candidates []string, toComplete string) []string {
	var names []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			names = append(names, c)
		}
	}
	return names
}

// registerCompletions registers all dynamic completions for commands.
func registerCompletions() {
	parseCmd.ValidArgsFunction = completeWorkbooks
	renderCmd.ValidArgsFunction = completeWorkbooks
	validateCmd.ValidArgsFunction = completeWorkbooks
	pkiCmd.ValidArgsFunction = completeYAMLFiles
	specsCmd.ValidArgsFunction = completeSpecNames

	for _, c := range []*cobra.Command{parseCmd, renderCmd, validateCmd, specsCmd} {
		_ = c.RegisterFlagCompletionFunc("spec", completeYAMLFiles)
	}
	_ = parseCmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = renderCmd.RegisterFlagCompletionFunc("region", completeRegion)
}

func init() {
	cobra.OnInitialize(registerCompletions)
}
