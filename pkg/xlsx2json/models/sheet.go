package models

// Sheet represents the tabular content of a single sheet.
type Sheet struct {
	// Columns holds the header labels in sheet order. Duplicates are kept.
	Columns []string `json:"columns"`
	// Data holds the rows below the header, each aligned with Columns.
	Data [][]Value `json:"data"`
}

// NumRows returns the number of data rows.
func (s Sheet) NumRows() int { return len(s.Data) }

// NumColumns returns the number of columns.
func (s Sheet) NumColumns() int { return len(s.Columns) }

// Pad extends or truncates every row to exactly len(Columns) entries,
// filling missing trailing cells with Absent.
func (s *Sheet) Pad() {
	width := len(s.Columns)
	for i, row := range s.Data {
		switch {
		case len(row) < width:
			padded := make([]Value, width)
			copy(padded, row)
			s.Data[i] = padded
		case len(row) > width:
			s.Data[i] = row[:width]
		}
	}
}

// RoundNumbers rounds every numeric cell to an integer.
// It reports whether any cell changed.
func (s *Sheet) RoundNumbers() bool {
	changed := false
	for _, row := range s.Data {
		for j, v := range row {
			if v.Kind() != KindNumber || v.IsInt() {
				continue
			}
			r := v.Round()
			if r.Float64() != v.Float64() {
				changed = true
			}
			row[j] = r
		}
	}
	return changed
}

// MarshalJSON implements json.Marshaler. Nil slices encode as empty arrays.
func (s Sheet) MarshalJSON() ([]byte, error) {
	type plain Sheet
	p := plain(s)
	if p.Columns == nil {
		p.Columns = []string{}
	}
	if p.Data == nil {
		p.Data = [][]Value{}
	}
	for i, row := range p.Data {
		if row == nil {
			p.Data[i] = []Value{}
		}
	}
	return marshalNoEscape(p)
}
