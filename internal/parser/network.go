package parser

import (
	"github.com/cameronsjo/tugboat/internal/excelspec"
	"github.com/cameronsjo/tugboat/internal/workbook"
)

// ExtractPrivateNetworks reads the private network section. The VLAN legend
// maps each VLAN to a network type; subnet rows are then grouped by the type
// of their VLAN. A subnet row with a blank VLAN continues the VLAN of the
// previous subnet row.
func ExtractPrivateNetworks(wb workbook.Workbook, spec excelspec.Specification) (map[string]PrivateNetwork, error) {
	r := sheetReader{wb: wb, sheet: spec.PrivateIPSheet}

	legend, err := readVLANLegend(r, spec)
	if err != nil {
		return nil, err
	}

	networks := make(map[string]*PrivateNetwork)
	lastVLAN := ""

	for row := spec.NetStartRow; row <= spec.NetEndRow; row++ {
		network, ok, err := r.optional(row, spec.NetCol)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		vlan, ok, err := r.optional(row, spec.NetVLANCol)
		if err != nil {
			return nil, err
		}
		if !ok {
			vlan = lastVLAN
		}

		netType, known := legend[vlan]
		if !known {
			return nil, &UnknownVLANError{Sheet: spec.PrivateIPSheet, Row: row, VLAN: vlan}
		}

		record, seen := networks[netType]
		if !seen {
			record = &PrivateNetwork{VLAN: vlan}
			networks[netType] = record
		}
		record.Subnets = append(record.Subnets, network)
		lastVLAN = vlan
	}

	result := make(map[string]PrivateNetwork, len(networks))
	for netType, record := range networks {
		record.IsCommon = len(record.Subnets) == 1
		result[netType] = *record
	}
	return result, nil
}

// readVLANLegend maps VLAN values to network type labels. Rows without a
// type label or without a VLAN are skipped; an untagged type never matches a
// subnet row.
func readVLANLegend(r sheetReader, spec excelspec.Specification) (map[string]string, error) {
	legend := make(map[string]string)

	for row := spec.VLANStartRow; row <= spec.VLANEndRow; row++ {
		label, ok, err := r.optional(row, spec.NetTypeCol)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		vlan, ok, err := r.optional(row, spec.VLANCol)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		legend[vlan] = label
	}

	return legend, nil
}
