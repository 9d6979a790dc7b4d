// Package workbook provides read-only access to spreadsheet cells.
//
// Cells are addressed by 1-based row and column numbers. Every read returns
// a Value that may be absent, so callers have to decide what a blank cell
// means for them.
package workbook

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSheetNotFound indicates a read against a sheet the workbook does not have.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidCoordinate indicates a row or column below 1.
var ErrInvalidCoordinate = errors.New("invalid cell coordinate")

// Workbook is an ordered set of named sheets.
type Workbook interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string

	// Cell reads the cell at (row, col) on the named sheet.
	Cell(sheet string, row, col int) (Value, error)
}

// Value is the content of a single cell. The zero Value is absent.
type Value struct {
	text    string
	present bool
}

// NewValue returns a Value for raw cell text. Text that is empty after
// trimming surrounding whitespace is absent.
func NewValue(raw string) Value {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Value{}
	}
	return Value{text: text, present: true}
}

// Absent returns the empty cell value.
func Absent() Value {
	return Value{}
}

// Get returns the cell text and whether the cell holds anything.
func (v Value) Get() (string, bool) {
	return v.text, v.present
}

// IsAbsent reports whether the cell is empty.
func (v Value) IsAbsent() bool {
	return !v.present
}

// String returns the cell text, or "" for an absent cell.
func (v Value) String() string {
	return v.text
}

func checkCoordinate(row, col int) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("%w: row %d, column %d", ErrInvalidCoordinate, row, col)
	}
	return nil
}
