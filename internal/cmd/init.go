package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cameronsjo/tugboat/internal/config"
	"github.com/cameronsjo/tugboat/internal/ui"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create a tugboat project",
	Long: `Initialize a tugboat project with settings, a starter spec catalog and
template override directories.

This creates:
  - tugboat.yaml       Settings
  - excel_spec.yaml    Spec catalog with one starter layout
  - templates/site/    Site template overrides
  - templates/pki/     PKI template overrides
  - .gitignore         Keeps .env out of git

If no directory is specified, the current directory is used.

Use --yes to skip all interactive prompts (useful for non-TTY environments).`,
	Args: cobra.MaximumNArgs(1),
	// Runs before any settings file exists.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Configure(verbose, noColor)
	},
	RunE: runInit,
}

var initYes bool

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	targetDir = absDir

	ui.Header("Initializing tugboat project in %s", targetDir)
	fmt.Println()

	settingsFile := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(settingsFile); err == nil {
		ui.Warning("This directory already has a %s.", config.FileName)
		if !initYes {
			response, err := promptYesNo("Reinitialize? This won't overwrite existing files.")
			if err != nil {
				return err
			}
			if !response {
				fmt.Println("Aborted.")
				return nil
			}
		}
	}

	ui.Info("Creating project structure...")
	dirs := []string{
		filepath.Join(targetDir, "templates", "site"),
		filepath.Join(targetDir, "templates", "pki"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	ui.Success("Created directories")

	ui.Info("Creating starter files...")
	files := []struct {
		name    string
		content string
	}{
		{config.FileName, starterSettings},
		{"excel_spec.yaml", starterSpecCatalog},
		{".gitignore", starterGitignore},
	}
	for _, f := range files {
		if err := createFileIfNotExists(filepath.Join(targetDir, f.name), f.content); err != nil {
			return fmt.Errorf("create %s: %w", f.name, err)
		}
	}

	fmt.Println()
	ui.Header("Next steps:")
	fmt.Println("  1. Adjust excel_spec.yaml to match your survey workbook layout")
	fmt.Println("  2. Run 'tugboat validate <workbook>' to check which spec matches")
	fmt.Println("  3. Run 'tugboat render <workbook> --region <name>' to write manifests")
	fmt.Println()
	ui.Info("Run 'tugboat --help' for all commands.")

	return nil
}

// isTerminal checks if stdin is a TTY.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptYesNo asks the user a yes/no question.
// Returns error if stdin is not a TTY and cannot read input.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, fmt.Errorf("cannot prompt for input: stdin is not a TTY. Use --yes flag to skip interactive prompts")
	}

	fmt.Printf("%s [y/N] ", question)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read user input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// createFileIfNotExists creates a file with the given content if it doesn't exist.
func createFileIfNotExists(filename, content string) error {
	if _, err := os.Stat(filename); err == nil {
		ui.Warning("%s already exists, skipping", filepath.Base(filename))
		return nil
	}

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return err
	}

	ui.Success("Created %s", filepath.Base(filename))
	return nil
}

const starterSettings = `# tugboat settings
spec_file: excel_spec.yaml
output_dir: pegleg_manifests
templates_dir: templates
# region: atl01

site_templates:
  - networks/common-addresses
  - baremetal/nodes

pki_templates:
  - pki-catalogue
`

const starterSpecCatalog = `# Spreadsheet layouts, tried in order. Rows and columns are 1-based.
specs:
  xl_spec_v1:
    ipmi_sheet_name: 'Hosts'
    header_row: 1
    ipmi_address_header: 'iLO / IPMI'
    start_row: 2
    end_row: 10
    hostname_col: 1
    ipmi_address_col: 2
    ipmi_gateway_col: 3
    host_profile_col: 4
    private_ip_sheet: 'Networks'
    vlan_start_row: 2
    vlan_end_row: 8
    net_type_col: 1
    vlan_col: 2
    net_start_row: 11
    net_end_row: 20
    net_col: 2
    net_vlan_col: 1
    public_ip_sheet: 'Networks'
    oam_ip_row: 23
    oam_ip_col: 2
    oam_vlan_col: 3
    ingress_ip_row: 24
    oob_net_row: 26
    oob_net_start_col: 1
    oob_net_end_col: 4
    dns_ntp_ldap_sheet: 'Services'
    dns_row: 1
    dns_col: 2
    ntp_row: 2
    ntp_col: 2
    domain_row: 3
    domain_col: 2
    ldap_subdomain_row: 4
    ldap_col: 2
    ldap_group_row: 5
    ldap_url_row: 6
`

const starterGitignore = `# Local overrides
.env

# OS
.DS_Store
Thumbs.db
`

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Skip all interactive prompts (assume yes for all questions)")
}
