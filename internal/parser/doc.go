// Package parser extracts site data from a survey workbook.
//
// Extraction runs in two stages. Resolve picks the first specification in
// the catalog whose host sheet and header cell match the workbook. The
// extractors then walk the regions that specification names:
//
//   - ExtractIPMI reads the host table (hostname, IPMI address and gateway,
//     host profile)
//   - ExtractPrivateNetworks reads the VLAN legend and the subnet rows,
//     carrying a VLAN forward onto rows that leave it blank
//   - ExtractPublicNetwork reads the OAM, ingress and OOB cells
//   - ExtractDNSNTPLDAP reads the DNS, NTP, domain and LDAP cells
//
// Parser.GetData runs all of them and returns a SiteData. Any failure aborts
// the whole extraction; there are no partial results.
package parser
