package parser

import (
	"github.com/cameronsjo/tugboat/internal/excelspec"
	"github.com/cameronsjo/tugboat/internal/workbook"
)

// ExtractDNSNTPLDAP reads the DNS, NTP, domain and LDAP cells.
func ExtractDNSNTPLDAP(wb workbook.Workbook, spec excelspec.Specification) (DNSNTPLDAP, error) {
	r := sheetReader{wb: wb, sheet: spec.DNSNTPLDAPSheet}

	var out DNSNTPLDAP
	reads := []struct {
		row, col int
		field    string
		dst      *string
	}{
		{spec.DNSRow, spec.DNSCol, "dns", &out.DNS},
		{spec.NTPRow, spec.NTPCol, "ntp", &out.NTP},
		{spec.DomainRow, spec.DomainCol, "domain", &out.Domain},
		{spec.LDAPSubdomainRow, spec.LDAPCol, "ldap subdomain", &out.LDAP.Subdomain},
		{spec.LDAPGroupRow, spec.LDAPCol, "ldap common name", &out.LDAP.CommonName},
		{spec.LDAPURLRow, spec.LDAPCol, "ldap url", &out.LDAP.URL},
	}

	for _, read := range reads {
		value, err := r.required(read.row, read.col, read.field)
		if err != nil {
			return DNSNTPLDAP{}, err
		}
		*read.dst = value
	}

	return out, nil
}
