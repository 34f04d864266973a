package parser

// usedRange returns the index of the first row holding a non-empty cell and
// the index of the rightmost non-empty column. Both are -1 when every cell
// is empty.
func usedRange(rows [][]string) (firstRow, lastCol int) {
	firstRow, lastCol = -1, -1
	for rowIdx, row := range rows {
		for colIdx := len(row) - 1; colIdx > lastCol; colIdx-- {
			if row[colIdx] != "" {
				lastCol = colIdx
				break
			}
		}
		if firstRow < 0 && !isBlankRow(row) {
			firstRow = rowIdx
		}
	}
	return
}

// isBlankRow reports whether every cell in row is empty.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
