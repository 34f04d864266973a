// Package parser reads sheet content out of Excel workbooks.
package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlsx2json-go/pkg/xlsx2json/models"
	"github.com/xuri/excelize/v2"
)

// DefaultNAValues lists the text cell contents treated as not-a-value.
var DefaultNAValues = []string{
	"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// ExtractSheet reads a sheet into its header labels and data rows.
//
// The first non-blank row is the header. Wholly blank rows are skipped.
// Every data row is padded with absent values to the sheet width, which is
// the widest row in the used range. Text cells whose content is one of
// naValues become absent; a nil naValues uses DefaultNAValues.
func ExtractSheet(f *excelize.File, sheetName string, naValues []string) (models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Sheet{}, err
	}

	sheet := models.Sheet{Columns: []string{}, Data: [][]models.Value{}}
	headerIdx, lastCol := usedRange(rows)
	if headerIdx < 0 {
		return sheet, nil
	}

	if naValues == nil {
		naValues = DefaultNAValues
	}
	na := make(map[string]struct{}, len(naValues))
	for _, s := range naValues {
		na[s] = struct{}{}
	}

	width := lastCol + 1
	sheet.Columns = make([]string, width)
	header := rows[headerIdx]
	for colIdx := range sheet.Columns {
		label := ""
		if colIdx < len(header) && header[colIdx] != "" {
			v, err := cellValue(f, sheetName, colIdx+1, headerIdx+1, header[colIdx], nil)
			if err != nil {
				return models.Sheet{}, err
			}
			label = v.String()
		}
		if label == "" {
			label = fmt.Sprintf("Unnamed: %d", colIdx)
		}
		sheet.Columns[colIdx] = label
	}

	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if isBlankRow(row) {
			continue
		}
		values := make([]models.Value, len(row))
		for colIdx, raw := range row {
			v, err := cellValue(f, sheetName, colIdx+1, rowIdx+1, raw, na)
			if err != nil {
				return models.Sheet{}, err
			}
			values[colIdx] = v
		}
		sheet.Data = append(sheet.Data, values)
	}
	sheet.Pad()

	return sheet, nil
}

// cellValue types the raw value of the cell at (col, row), both 1-based.
func cellValue(f *excelize.File, sheetName string, col, row int, raw string, na map[string]struct{}) (models.Value, error) {
	if raw == "" {
		return models.Absent(), nil
	}
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Absent(), err
	}
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Absent(), err
	}
	return typedValue(typ, raw, na), nil
}

// typedValue converts a raw cell value according to its stored cell type.
// Numbers keep integer or float form, booleans stay booleans, error cells
// and not-a-value text become absent.
func typedValue(typ excelize.CellType, raw string, na map[string]struct{}) models.Value {
	switch typ {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "TRUE"))
	case excelize.CellTypeError:
		return models.Absent()
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		v := models.ParseNumber(raw)
		if v.Kind() == models.KindText {
			return textValue(raw, na)
		}
		return v
	default:
		return textValue(raw, na)
	}
}

func textValue(raw string, na map[string]struct{}) models.Value {
	if _, ok := na[raw]; ok {
		return models.Absent()
	}
	return models.Text(raw)
}
