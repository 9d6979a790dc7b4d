package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cameronsjo/tugboat/internal/config"
)

// resetFlags puts every flag that a previous run changed back to its default.
// Cobra keeps flag values between Execute calls on the same command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCmd executes the root command with the given args and returns the output.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	// Set args before output buffers.
	rootCmd.SetArgs(args)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

const siteSheet = "Site-Information"

// testSpecs holds a layout that never matches the fixture workbook, followed
// by the one that does.
const testSpecs = `specs:
  legacy_v0:
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
  site_v1:
    ipmi_sheet_name: 'SITE-INFO'
    header_row: 3
    ipmi_address_header: 'IPMI Address'
    start_row: 4
    end_row: 5
    hostname_col: 2
    ipmi_address_col: 3
    ipmi_gateway_col: 4
    host_profile_col: 5
    private_ip_sheet: 'Site-Information'
    vlan_start_row: 8
    vlan_end_row: 9
    net_type_col: 2
    vlan_col: 3
    net_start_row: 12
    net_end_row: 14
    net_col: 2
    net_vlan_col: 1
    public_ip_sheet: 'Site-Information'
    oam_ip_row: 18
    oam_ip_col: 2
    oam_vlan_col: 4
    ingress_ip_row: 19
    oob_net_row: 20
    oob_net_start_col: 2
    oob_net_end_col: 4
    dns_ntp_ldap_sheet: 'Site-Information'
    dns_row: 22
    dns_col: 2
    ntp_row: 23
    ntp_col: 2
    domain_row: 24
    domain_col: 2
    ldap_subdomain_row: 25
    ldap_col: 2
    ldap_group_row: 26
    ldap_url_row: 27
`

// siteCells is the content of the fixture workbook's site sheet.
var siteCells = map[string]string{
	"B3": "Hostname", "C3": "IPMI Address", "D3": "Gateway", "E3": "Profile",
	"B4": "Host-01", "C4": "10.0.0.5/24", "D4": "10.0.0.1", "E4": "server-profile-A",
	"B5": "host-02", "C5": "10.0.0.6", "D5": "10.0.0.1", "E5": "dp-r720",

	"B8": "storage", "C8": "10",
	"B9": "mgmt", "C9": "20",

	"A12": "10", "B12": "10.1.0.0/24",
	"B13": "10.1.1.0/24",
	"A14": "20", "B14": "10.2.0.0/24",

	"B18": "135.16.101.87/27", "D18": "2301",
	"B19": "135.16.101.66/27",
	"B20": "10.3.0.0/24", "C20": "10.3.1.0/24",

	"B22": "8.8.8.8, 8.8.4.4",
	"B23": "ntp1.example.com",
	"B24": "example.com",
	"B25": "test",
	"B26": "AP-admins",
	"B27": "ldap://ldap.example.com",
}

// project is a temporary tugboat project.
type project struct {
	dir      string
	settings string
	workbook string
}

// newProject writes settings, the spec catalog and a matching workbook into a
// temp directory.
func newProject(t *testing.T) *project {
	t.Helper()
	for _, env := range []string{config.EnvSpecFile, config.EnvOutputDir, config.EnvTemplatesDir, config.EnvRegion} {
		t.Setenv(env, "")
	}

	dir := t.TempDir()
	p := &project{
		dir:      dir,
		settings: filepath.Join(dir, config.FileName),
		workbook: filepath.Join(dir, "site.xlsx"),
	}

	require.NoError(t, os.WriteFile(p.settings, []byte("spec_file: specs.yaml\noutput_dir: out\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "specs.yaml"), []byte(testSpecs), 0644))
	writeWorkbook(t, p.workbook, map[string]map[string]string{
		"Cover":   {"A1": "Site survey"},
		siteSheet: siteCells,
	}, "Cover", siteSheet)

	return p
}

// writeWorkbook saves an xlsx with the given sheets, in order.
func writeWorkbook(t *testing.T, path string, cells map[string]map[string]string, sheets ...string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			continue
		}
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	for sheet, values := range cells {
		for ref, v := range values {
			require.NoError(t, f.SetCellValue(sheet, ref, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func (p *project) path(elem ...string) string {
	return filepath.Join(append([]string{p.dir}, elem...)...)
}
