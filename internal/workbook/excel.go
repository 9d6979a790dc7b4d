package workbook

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

// File is a Workbook backed by an xlsx file on disk.
type File struct {
	path   string
	f      *excelize.File
	sheets []string
}

// Open opens an xlsx workbook for reading. Callers must Close it.
func Open(path string) (*File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}

	return &File{
		path:   path,
		f:      f,
		sheets: f.GetSheetList(),
	}, nil
}

// Path returns the file the workbook was opened from.
func (w *File) Path() string {
	return w.path
}

// SheetNames returns sheet names in workbook order.
func (w *File) SheetNames() []string {
	return slices.Clone(w.sheets)
}

// Cell reads the formatted value of a cell. Formulas are not evaluated; the
// cached value stored in the file is returned.
func (w *File) Cell(sheet string, row, col int) (Value, error) {
	if err := checkCoordinate(row, col); err != nil {
		return Value{}, err
	}
	if !slices.Contains(w.sheets, sheet) {
		return Value{}, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Value{}, fmt.Errorf("cell name for row %d, column %d: %w", row, col, err)
	}

	raw, err := w.f.GetCellValue(sheet, ref)
	if err != nil {
		return Value{}, fmt.Errorf("read %s!%s: %w", sheet, ref, err)
	}

	return NewValue(raw), nil
}

// Close releases the underlying file.
func (w *File) Close() error {
	return w.f.Close()
}
