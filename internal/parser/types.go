package parser

import "encoding/json"

// SiteData is everything extracted from one workbook.
type SiteData struct {
	IPMIData    IPMIData    `yaml:"ipmi_data" json:"ipmi_data"`
	NetworkData NetworkData `yaml:"network_data" json:"network_data"`
}

// HostRecord holds the management details of one host.
type HostRecord struct {
	IPMIAddress string `yaml:"ipmi_address" json:"ipmi_address"`
	IPMIGateway string `yaml:"ipmi_gateway" json:"ipmi_gateway"`
	HostProfile string `yaml:"host_profile" json:"host_profile"`
}

// IPMIData holds host records keyed by hostname, plus every hostname in row
// order. Order keeps duplicates; Hosts keeps the last row for each name.
type IPMIData struct {
	Hosts map[string]HostRecord
	Order []string
}

// MarshalYAML encodes the data as the two-element list [hosts, order].
func (d IPMIData) MarshalYAML() (any, error) {
	return []any{d.Hosts, d.Order}, nil
}

// MarshalJSON encodes the data as the two-element list [hosts, order].
func (d IPMIData) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.Hosts, d.Order})
}

// NetworkData groups the network sections of the workbook.
type NetworkData struct {
	Private    map[string]PrivateNetwork `yaml:"private" json:"private"`
	Public     PublicNetwork             `yaml:"public" json:"public"`
	DNSNTPLDAP DNSNTPLDAP                `yaml:"dns_ntp_ldap" json:"dns_ntp_ldap"`
}

// PrivateNetwork is one network type from the private network section.
type PrivateNetwork struct {
	VLAN     string   `yaml:"vlan" json:"vlan"`
	Subnets  []string `yaml:"subnet" json:"subnet"`
	IsCommon bool     `yaml:"is_common" json:"is_common"`
}

// PublicNetwork holds the public network section.
type PublicNetwork struct {
	OAM     OAMNetwork `yaml:"oam" json:"oam"`
	Ingress string     `yaml:"ingress" json:"ingress"`
	OOB     OOBNetwork `yaml:"oob" json:"oob"`
}

// OAMNetwork is the operations and management network.
type OAMNetwork struct {
	IP   string `yaml:"ip" json:"ip"`
	VLAN string `yaml:"vlan" json:"vlan"`
}

// OOBNetwork is the out-of-band management network.
type OOBNetwork struct {
	Subnets []string `yaml:"subnets" json:"subnets"`
}

// DNSNTPLDAP holds name service, time and directory settings.
type DNSNTPLDAP struct {
	DNS    string `yaml:"dns" json:"dns"`
	NTP    string `yaml:"ntp" json:"ntp"`
	Domain string `yaml:"domain" json:"domain"`
	LDAP   LDAP   `yaml:"ldap" json:"ldap"`
}

// LDAP holds directory settings.
type LDAP struct {
	Subdomain  string `yaml:"subdomain" json:"subdomain"`
	CommonName string `yaml:"common_name" json:"common_name"`
	URL        string `yaml:"url" json:"url"`
}
