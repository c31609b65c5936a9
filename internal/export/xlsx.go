package export

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const sheet = "Order"

// numeric columns by zero-based index: qty, priceEur, priceCadBase, lineTotalCadBase
var numericCols = map[int]bool{6: true, 7: true, 8: true, 9: true}

// WriteXLSX writes the same records as WriteCSV into a single-sheet workbook.
// Numeric columns are stored as numbers so the sheet can sum them.
func WriteXLSX(w io.Writer, rows iter.Seq[[]string]) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	for rec := range rows {
		for i, v := range rec {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			var val any = v
			if row > 1 && numericCols[i] {
				if n, err := strconv.ParseFloat(v, 64); err == nil {
					val = n
				}
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 26) // timestamp
	_ = f.SetColWidth(sheet, "B", "C", 24) // name, email
	_ = f.SetColWidth(sheet, "F", "F", 22) // color

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
