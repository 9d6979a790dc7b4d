package parser

import (
	"fmt"

	"github.com/cameronsjo/tugboat/internal/excelspec"
	"github.com/cameronsjo/tugboat/internal/workbook"
)

// Parser extracts SiteData from one workbook using a spec catalog.
type Parser struct {
	wb       workbook.Workbook
	catalog  *excelspec.Catalog
	resolved *ResolvedSpec
}

// New creates a Parser. Nothing is read until Resolve or GetData is called.
func New(wb workbook.Workbook, catalog *excelspec.Catalog) *Parser {
	return &Parser{wb: wb, catalog: catalog}
}

// Resolve selects the specification for the workbook. The result is cached,
// so later calls return the same spec without reading the workbook again.
func (p *Parser) Resolve() (*ResolvedSpec, error) {
	if p.resolved != nil {
		return p.resolved, nil
	}

	rs, err := Resolve(p.wb, p.catalog)
	if err != nil {
		return nil, err
	}
	p.resolved = rs
	return rs, nil
}

// GetData resolves the specification if needed and runs every extractor.
func (p *Parser) GetData() (*SiteData, error) {
	rs, err := p.Resolve()
	if err != nil {
		return nil, err
	}

	ipmi, err := ExtractIPMI(p.wb, rs)
	if err != nil {
		return nil, fmt.Errorf("extract ipmi data: %w", err)
	}

	private, err := ExtractPrivateNetworks(p.wb, rs.Spec)
	if err != nil {
		return nil, fmt.Errorf("extract private networks: %w", err)
	}

	public, err := ExtractPublicNetwork(p.wb, rs.Spec)
	if err != nil {
		return nil, fmt.Errorf("extract public network: %w", err)
	}

	dns, err := ExtractDNSNTPLDAP(p.wb, rs.Spec)
	if err != nil {
		return nil, fmt.Errorf("extract dns/ntp/ldap: %w", err)
	}

	return &SiteData{
		IPMIData: ipmi,
		NetworkData: NetworkData{
			Private:    private,
			Public:     public,
			DNSNTPLDAP: dns,
		},
	}, nil
}
