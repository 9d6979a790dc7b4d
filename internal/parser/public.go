package parser

import (
	"github.com/cameronsjo/tugboat/internal/excelspec"
	"github.com/cameronsjo/tugboat/internal/workbook"
)

// ExtractPublicNetwork reads the OAM and ingress cells and scans the OOB row.
func ExtractPublicNetwork(wb workbook.Workbook, spec excelspec.Specification) (PublicNetwork, error) {
	r := sheetReader{wb: wb, sheet: spec.PublicIPSheet}

	oamIP, err := r.required(spec.OAMIPRow, spec.OAMIPCol, "oam ip")
	if err != nil {
		return PublicNetwork{}, err
	}
	oamVLAN, err := r.required(spec.OAMIPRow, spec.OAMVLANCol, "oam vlan")
	if err != nil {
		return PublicNetwork{}, err
	}
	ingress, err := r.required(spec.IngressIPRow, spec.OAMIPCol, "ingress ip")
	if err != nil {
		return PublicNetwork{}, err
	}

	subnets := []string{}
	for col := spec.OOBNetStartCol; col <= spec.OOBNetEndCol; col++ {
		subnet, ok, err := r.optional(spec.OOBNetRow, col)
		if err != nil {
			return PublicNetwork{}, err
		}
		if ok {
			subnets = append(subnets, Normalize(subnet))
		}
	}

	return PublicNetwork{
		OAM:     OAMNetwork{IP: oamIP, VLAN: oamVLAN},
		Ingress: ingress,
		OOB:     OOBNetwork{Subnets: subnets},
	}, nil
}
