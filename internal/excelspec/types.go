// Package excelspec loads the catalog of spreadsheet layout specifications.
//
// Each specification names the sheets and the 1-based rows and columns where
// one known variant of the site survey workbook keeps its data. The catalog
// preserves declaration order, which decides which specification wins when
// more than one could match a workbook.
package excelspec

// Specification describes where every field lives in one workbook layout.
type Specification struct {
	// Host table. The header cell at (HeaderRow, IPMIAddressCol) must contain
	// IPMIAddressHeader for the layout to be accepted.
	IPMISheetName     string `yaml:"ipmi_sheet_name"`
	HeaderRow         int    `yaml:"header_row"`
	IPMIAddressHeader string `yaml:"ipmi_address_header"`
	StartRow          int    `yaml:"start_row"`
	EndRow            int    `yaml:"end_row"`
	HostnameCol       int    `yaml:"hostname_col"`
	IPMIAddressCol    int    `yaml:"ipmi_address_col"`
	IPMIGatewayCol    int    `yaml:"ipmi_gateway_col"`
	HostProfileCol    int    `yaml:"host_profile_col"`

	// Private networks: a VLAN legend followed by subnet rows.
	PrivateIPSheet string `yaml:"private_ip_sheet"`
	VLANStartRow   int    `yaml:"vlan_start_row"`
	VLANEndRow     int    `yaml:"vlan_end_row"`
	NetTypeCol     int    `yaml:"net_type_col"`
	VLANCol        int    `yaml:"vlan_col"`
	NetStartRow    int    `yaml:"net_start_row"`
	NetEndRow      int    `yaml:"net_end_row"`
	NetCol         int    `yaml:"net_col"`
	NetVLANCol     int    `yaml:"net_vlan_col"`

	// Public networks.
	PublicIPSheet  string `yaml:"public_ip_sheet"`
	OAMIPRow       int    `yaml:"oam_ip_row"`
	OAMIPCol       int    `yaml:"oam_ip_col"`
	OAMVLANCol     int    `yaml:"oam_vlan_col"`
	IngressIPRow   int    `yaml:"ingress_ip_row"`
	OOBNetRow      int    `yaml:"oob_net_row"`
	OOBNetStartCol int    `yaml:"oob_net_start_col"`
	OOBNetEndCol   int    `yaml:"oob_net_end_col"`

	// DNS, NTP and LDAP.
	DNSNTPLDAPSheet  string `yaml:"dns_ntp_ldap_sheet"`
	DNSRow           int    `yaml:"dns_row"`
	DNSCol           int    `yaml:"dns_col"`
	NTPRow           int    `yaml:"ntp_row"`
	NTPCol           int    `yaml:"ntp_col"`
	DomainRow        int    `yaml:"domain_row"`
	DomainCol        int    `yaml:"domain_col"`
	LDAPSubdomainRow int    `yaml:"ldap_subdomain_row"`
	LDAPCol          int    `yaml:"ldap_col"`
	LDAPGroupRow     int    `yaml:"ldap_group_row"`
	LDAPURLRow       int    `yaml:"ldap_url_row"`
}

// Entry is a named specification.
type Entry struct {
	Name string        `yaml:"name"`
	Spec Specification `yaml:"spec"`
}

// field pairs a YAML key with its value for validation messages.
type field struct {
	key   string
	value int
}

func (s Specification) coordinates() []field {
	return []field{
		{"header_row", s.HeaderRow},
		{"start_row", s.StartRow},
		{"end_row", s.EndRow},
		{"hostname_col", s.HostnameCol},
		{"ipmi_address_col", s.IPMIAddressCol},
		{"ipmi_gateway_col", s.IPMIGatewayCol},
		{"host_profile_col", s.HostProfileCol},
		{"vlan_start_row", s.VLANStartRow},
		{"vlan_end_row", s.VLANEndRow},
		{"net_type_col", s.NetTypeCol},
		{"vlan_col", s.VLANCol},
		{"net_start_row", s.NetStartRow},
		{"net_end_row", s.NetEndRow},
		{"net_col", s.NetCol},
		{"net_vlan_col", s.NetVLANCol},
		{"oam_ip_row", s.OAMIPRow},
		{"oam_ip_col", s.OAMIPCol},
		{"oam_vlan_col", s.OAMVLANCol},
		{"ingress_ip_row", s.IngressIPRow},
		{"oob_net_row", s.OOBNetRow},
		{"oob_net_start_col", s.OOBNetStartCol},
		{"oob_net_end_col", s.OOBNetEndCol},
		{"dns_row", s.DNSRow},
		{"dns_col", s.DNSCol},
		{"ntp_row", s.NTPRow},
		{"ntp_col", s.NTPCol},
		{"domain_row", s.DomainRow},
		{"domain_col", s.DomainCol},
		{"ldap_subdomain_row", s.LDAPSubdomainRow},
		{"ldap_col", s.LDAPCol},
		{"ldap_group_row", s.LDAPGroupRow},
		{"ldap_url_row", s.LDAPURLRow},
	}
}

// ranges returns (start, end) pairs that must not be inverted.
func (s Specification) ranges() [][2]field {
	return [][2]field{
		{{"start_row", s.StartRow}, {"end_row", s.EndRow}},
		{{"vlan_start_row", s.VLANStartRow}, {"vlan_end_row", s.VLANEndRow}},
		{{"net_start_row", s.NetStartRow}, {"net_end_row", s.NetEndRow}},
		{{"oob_net_start_col", s.OOBNetStartCol}, {"oob_net_end_col", s.OOBNetEndCol}},
	}
}
