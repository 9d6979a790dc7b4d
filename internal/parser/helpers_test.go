package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cameronsjo/tugboat/internal/excelspec"
	"github.com/cameronsjo/tugboat/internal/workbook"
)

const siteSheet = "Site-Information"

// testSpec describes the layout built by siteWorkbook.
func testSpec() excelspec.Specification {
	return excelspec.Specification{
		IPMISheetName:     "SITE-INFO",
		HeaderRow:         3,
		IPMIAddressHeader: "IPMI Address",
		StartRow:          4,
		EndRow:            4,
		HostnameCol:       2,
		IPMIAddressCol:    3,
		IPMIGatewayCol:    4,
		HostProfileCol:    5,

		PrivateIPSheet: siteSheet,
		VLANStartRow:   8,
		VLANEndRow:     10,
		NetTypeCol:     2,
		VLANCol:        3,
		NetStartRow:    12,
		NetEndRow:      15,
		NetCol:         2,
		NetVLANCol:     1,

		PublicIPSheet:  siteSheet,
		OAMIPRow:       18,
		OAMIPCol:       2,
		OAMVLANCol:     4,
		IngressIPRow:   19,
		OOBNetRow:      20,
		OOBNetStartCol: 2,
		OOBNetEndCol:   4,

		DNSNTPLDAPSheet:  siteSheet,
		DNSRow:           22,
		DNSCol:           2,
		NTPRow:           23,
		NTPCol:           2,
		DomainRow:        24,
		DomainCol:        2,
		LDAPSubdomainRow: 25,
		LDAPCol:          2,
		LDAPGroupRow:     26,
		LDAPURLRow:       27,
	}
}

func testCatalog(t *testing.T, entries ...excelspec.Entry) *excelspec.Catalog {
	t.Helper()
	if len(entries) == 0 {
		entries = []excelspec.Entry{{Name: "site_v1", Spec: testSpec()}}
	}
	catalog, err := excelspec.New(entries...)
	require.NoError(t, err)
	return catalog
}

// siteWorkbook returns a workbook matching testSpec.
func siteWorkbook() *workbook.Memory {
	return workbook.NewMemory().
		AddSheet("Cover").
		SetRow(siteSheet, 3, 2, "Hostname", "IPMI Address", "Gateway", "Profile").
		SetRow(siteSheet, 4, 2, "Host-01", "10.0.0.5/24", "10.0.0.1", "server-profile-A").
		// VLAN legend
		SetRow(siteSheet, 8, 2, "storage", "10").
		SetRow(siteSheet, 9, 2, "mgmt", "20").
		// Subnets; row 13 carries vlan 10 forward, row 15 is blank.
		SetRow(siteSheet, 12, 1, "10", "10.1.0.0/24").
		SetRow(siteSheet, 13, 1, "", "10.1.1.0/24").
		SetRow(siteSheet, 14, 1, "20", "10.2.0.0/24").
		// Public
		SetRow(siteSheet, 18, 2, "135.16.101.87/27", "", "2301").
		Set(siteSheet, 19, 2, "135.16.101.66/27").
		SetRow(siteSheet, 20, 2, "10.3.0.0/24", "", "10.3.1.0 / 24").
		// DNS/NTP/LDAP
		Set(siteSheet, 22, 2, "8.8.8.8,8.8.4.4").
		Set(siteSheet, 23, 2, "ntp.example.com").
		Set(siteSheet, 24, 2, "example.com").
		Set(siteSheet, 25, 2, "test").
		Set(siteSheet, 26, 2, "AP-admins").
		Set(siteSheet, 27, 2, "ldap://ldap.example.com")
}
