package visuals

import (
	"fmt"

	"ebs/internal/simulation"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Projection"

// WriteProjectionWorkbook renders projection results to an xlsx workbook,
// one block of percentile rows per estimator.
func WriteProjectionWorkbook(path string, results []*simulation.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range []string{"Estimator", "Percentile", "Ship Date"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	row := 2
	for _, res := range results {
		if res.Skipped != "" {
			writeRow(f, row, res.Estimator, res.Skipped, "")
			row++
			continue
		}
		for _, r := range res.Rows {
			writeRow(f, row, res.Estimator, fmt.Sprintf("%.0f%%", r.Percentile), r.Date.String())
			row++
		}
	}

	for col := 1; col <= 3; col++ {
		colName, _ := excelize.ColumnNumberToName(col)
		if err := f.SetColWidth(sheetName, colName, colName, 24); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values ...string) {
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		_ = f.SetCellValue(sheetName, cell, v)
	}
}
