package workbook

import (
	"fmt"
	"slices"
)

// Memory is an in-memory Workbook. It is mostly useful for tests and for
// callers that already hold sheet data.
type Memory struct {
	order  []string
	sheets map[string]map[[2]int]string
}

// NewMemory creates an empty in-memory workbook.
func NewMemory() *Memory {
	return &Memory{sheets: make(map[string]map[[2]int]string)}
}

// AddSheet appends a sheet. Adding an existing sheet is a no-op.
func (m *Memory) AddSheet(name string) *Memory {
	if _, ok := m.sheets[name]; ok {
		return m
	}
	m.order = append(m.order, name)
	m.sheets[name] = make(map[[2]int]string)
	return m
}

// Set stores raw text at (row, col), creating the sheet if needed.
func (m *Memory) Set(sheet string, row, col int, text string) *Memory {
	m.AddSheet(sheet)
	m.sheets[sheet][[2]int{row, col}] = text
	return m
}

// SetRow stores values left to right starting at (row, col). Empty strings
// leave the cell blank.
func (m *Memory) SetRow(sheet string, row, col int, values ...string) *Memory {
	for i, v := range values {
		if v == "" {
			continue
		}
		m.Set(sheet, row, col+i, v)
	}
	return m
}

// SheetNames returns sheet names in insertion order.
func (m *Memory) SheetNames() []string {
	return slices.Clone(m.order)
}

// Cell reads the cell at (row, col).
func (m *Memory) Cell(sheet string, row, col int) (Value, error) {
	if err := checkCoordinate(row, col); err != nil {
		return Value{}, err
	}
	cells, ok := m.sheets[sheet]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return NewValue(cells[[2]int{row, col}]), nil
}
