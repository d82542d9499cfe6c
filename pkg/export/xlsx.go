// Package export writes the report tables to an Excel workbook, one
// sheet per table, for people who want the numbers outside LaTeX.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/solvestat/solvestat/pkg/render"
)

// Workbook writes the given tables to an .xlsx file at path. Sheet names
// follow the table order; the first table replaces the default sheet.
func Workbook(path string, sheets map[string]render.Table, order []string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		t, ok := sheets[name]
		if !ok {
			return fmt.Errorf("export: unknown sheet %q", name)
		}

		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("export: rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("export: create sheet %q: %w", name, err)
			}
		}

		if err := writeSheet(f, name, t); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, t render.Table) error {
	for col, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for rowIdx, row := range t.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
