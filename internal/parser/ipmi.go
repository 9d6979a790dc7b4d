package parser

import (
	"strings"

	"github.com/cameronsjo/tugboat/internal/workbook"
)

// ExtractIPMI reads the host table of the resolved host sheet.
func ExtractIPMI(wb workbook.Workbook, rs *ResolvedSpec) (IPMIData, error) {
	spec := rs.Spec
	r := sheetReader{wb: wb, sheet: rs.IPMISheet}

	data := IPMIData{Hosts: make(map[string]HostRecord)}

	for row := spec.StartRow; row <= spec.EndRow; row++ {
		rawHostname, err := r.required(row, spec.HostnameCol, "hostname")
		if err != nil {
			return IPMIData{}, err
		}
		hostname := Normalize(rawHostname)
		data.Order = append(data.Order, hostname)

		address, err := r.required(row, spec.IPMIAddressCol, "ipmi address")
		if err != nil {
			return IPMIData{}, err
		}
		// Drop any prefix length, e.g. 10.0.0.5/24.
		address, _, _ = strings.Cut(address, "/")

		gateway, err := r.required(row, spec.IPMIGatewayCol, "ipmi gateway")
		if err != nil {
			return IPMIData{}, err
		}

		rawProfile, err := r.required(row, spec.HostProfileCol, "host profile")
		if err != nil {
			return IPMIData{}, err
		}
		_, profile, found := strings.Cut(rawProfile, "-")
		if !found {
			return IPMIData{}, &MalformedHostProfileError{Sheet: rs.IPMISheet, Row: row, Value: rawProfile}
		}

		data.Hosts[hostname] = HostRecord{
			IPMIAddress: address,
			IPMIGateway: gateway,
			HostProfile: profile,
		}
	}

	return data, nil
}
