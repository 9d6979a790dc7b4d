package parser

import (
	"fmt"

	"github.com/cameronsjo/tugboat/internal/excelspec"
	"github.com/cameronsjo/tugboat/internal/workbook"
)

// ResolvedSpec is the specification selected for a workbook together with
// the actual name of the host sheet it matched.
type ResolvedSpec struct {
	Name      string
	Spec      excelspec.Specification
	IPMISheet string
}

// Resolve returns the first catalog entry, in declaration order, that
// validates against the workbook. An entry validates when some sheet's name
// matches its ipmi_sheet_name and that sheet's header cell matches its
// ipmi_address_header. Sheets are tried in workbook order.
func Resolve(wb workbook.Workbook, catalog *excelspec.Catalog) (*ResolvedSpec, error) {
	sheets := wb.SheetNames()

	for _, entry := range catalog.Entries() {
		for _, sheet := range sheets {
			if !Matches(entry.Spec.IPMISheetName, sheet) {
				continue
			}

			ok, err := validateHeader(wb, sheet, entry.Spec)
			if err != nil {
				return nil, fmt.Errorf("validate spec %s against sheet %q: %w", entry.Name, sheet, err)
			}
			if ok {
				return &ResolvedSpec{
					Name:      entry.Name,
					Spec:      entry.Spec,
					IPMISheet: sheet,
				}, nil
			}
		}
	}

	return nil, &NoSpecMatchedError{Catalog: catalog, Sheets: sheets}
}

// validateHeader checks the header cell above the IPMI address column. A
// blank header never validates.
func validateHeader(wb workbook.Workbook, sheet string, spec excelspec.Specification) (bool, error) {
	cell, err := wb.Cell(sheet, spec.HeaderRow, spec.IPMIAddressCol)
	if err != nil {
		return false, err
	}

	header, ok := cell.Get()
	if !ok {
		return false, nil
	}
	return Matches(spec.IPMIAddressHeader, header), nil
}
