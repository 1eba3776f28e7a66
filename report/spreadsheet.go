package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dariuszzbyrad/jgenetics/genetic"
)

// SheetName is the sheet holding the per iteration rows
const SheetName = "Sheet1"

var header = []interface{}{"iteration", "min", "avg", "max"}

// Spreadsheet collects one row per iteration in an xlsx workbook
type Spreadsheet struct {
	f   *excelize.File
	row int
}

// NewSpreadsheet starts a workbook with the header row
func NewSpreadsheet() (*Spreadsheet, error) {
	f := excelize.NewFile()
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}

	return &Spreadsheet{f: f, row: 1}, nil
}

// Update appends the iteration row
func (s *Spreadsheet) Update(iteration int, st genetic.Statistic) error {
	cell, err := excelize.CoordinatesToCellName(1, s.row+1)
	if err != nil {
		return err
	}
	row := []interface{}{iteration, st.Min, st.Avg, st.Max}
	if err := s.f.SetSheetRow(SheetName, cell, &row); err != nil {
		return fmt.Errorf("%w: %v", ErrorSaveReport, err)
	}
	s.row++

	return nil
}

// Rows is the number of iterations written so far
func (s *Spreadsheet) Rows() int {
	return s.row - 1
}

// SaveAs writes the workbook to path
func (s *Spreadsheet) SaveAs(path string) error {
	if err := s.f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %v", ErrorSaveReport, err)
	}

	return nil
}

// Close releases the workbook
func (s *Spreadsheet) Close() error {
	return s.f.Close()
}
