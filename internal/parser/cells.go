package parser

import (
	"github.com/cameronsjo/tugboat/internal/workbook"
)

// sheetReader reads cells from a single sheet.
type sheetReader struct {
	wb    workbook.Workbook
	sheet string
}

func (r sheetReader) optional(row, col int) (string, bool, error) {
	v, err := r.wb.Cell(r.sheet, row, col)
	if err != nil {
		return "", false, err
	}
	text, ok := v.Get()
	return text, ok, nil
}

func (r sheetReader) required(row, col int, field string) (string, error) {
	text, ok, err := r.optional(row, col)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &MissingCellError{Sheet: r.sheet, Row: row, Col: col, Field: field}
	}
	return text, nil
}
