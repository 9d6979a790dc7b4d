package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cameronsjo/tugboat/internal/excelspec"
)

// Extraction errors. Each has a typed counterpart carrying location details;
// use errors.Is with these sentinels and errors.As with the types.
var (
	// ErrNoSpecMatched indicates no catalog entry matched the workbook.
	ErrNoSpecMatched = errors.New("no specification matched")

	// ErrMalformedHostProfile indicates a host profile without a '-' separator.
	ErrMalformedHostProfile = errors.New("malformed host profile")

	// ErrUnknownVLAN indicates a subnet row referencing a VLAN missing from the legend.
	ErrUnknownVLAN = errors.New("unknown vlan")

	// ErrMissingCell indicates an empty cell where a value is required.
	ErrMissingCell = errors.New("missing cell value")
)

// NoSpecMatchedError reports a workbook that no specification accepts.
type NoSpecMatchedError struct {
	// Catalog is the full catalog that was tried.
	Catalog *excelspec.Catalog
	// Sheets are the workbook's sheet names.
	Sheets []string
}

func (e *NoSpecMatchedError) Error() string {
	var tried []string
	for _, entry := range e.Catalog.Entries() {
		tried = append(tried, fmt.Sprintf("%s (sheet %q, header %q)",
			entry.Name, entry.Spec.IPMISheetName, entry.Spec.IPMIAddressHeader))
	}
	return fmt.Sprintf("%v for sheets %q; tried %s", ErrNoSpecMatched, e.Sheets, strings.Join(tried, ", "))
}

func (e *NoSpecMatchedError) Unwrap() error {
	return ErrNoSpecMatched
}

// MalformedHostProfileError reports a host profile cell lacking a separator.
type MalformedHostProfileError struct {
	Sheet string
	Row   int
	Value string
}

func (e *MalformedHostProfileError) Error() string {
	return fmt.Sprintf("%v %q in sheet %q row %d: expected '-' separator", ErrMalformedHostProfile, e.Value, e.Sheet, e.Row)
}

func (e *MalformedHostProfileError) Unwrap() error {
	return ErrMalformedHostProfile
}

// UnknownVLANError reports a subnet row whose VLAN is not in the legend.
type UnknownVLANError struct {
	Sheet string
	Row   int
	VLAN  string
}

func (e *UnknownVLANError) Error() string {
	if e.VLAN == "" {
		return fmt.Sprintf("%v in sheet %q row %d: no vlan given and none to carry forward", ErrUnknownVLAN, e.Sheet, e.Row)
	}
	return fmt.Sprintf("%v %q in sheet %q row %d", ErrUnknownVLAN, e.VLAN, e.Sheet, e.Row)
}

func (e *UnknownVLANError) Unwrap() error {
	return ErrUnknownVLAN
}

// MissingCellError reports an empty cell that must hold a value.
type MissingCellError struct {
	Sheet string
	Row   int
	Col   int
	Field string
}

func (e *MissingCellError) Error() string {
	return fmt.Sprintf("%v: %s at sheet %q row %d column %d", ErrMissingCell, e.Field, e.Sheet, e.Row, e.Col)
}

func (e *MissingCellError) Unwrap() error {
	return ErrMissingCell
}
