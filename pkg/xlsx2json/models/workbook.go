package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Workbook is an ordered mapping from sheet name to Sheet.
// Sheets keep the order in which they were added.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"-"`

	names  []string
	sheets map[string]Sheet
}

// NewWorkbook returns an empty workbook.
func NewWorkbook(bookName string) *Workbook {
	return &Workbook{
		BookName: bookName,
		sheets:   make(map[string]Sheet),
	}
}

// Set stores sheet under name. A new name is appended to the order;
// an existing name keeps its position.
func (w *Workbook) Set(name string, sheet Sheet) {
	if w.sheets == nil {
		w.sheets = make(map[string]Sheet)
	}
	if _, ok := w.sheets[name]; !ok {
		w.names = append(w.names, name)
	}
	w.sheets[name] = sheet
}

// Sheet returns the sheet stored under name.
func (w *Workbook) Sheet(name string) (Sheet, bool) {
	s, ok := w.sheets[name]
	return s, ok
}

// Names returns the sheet names in order.
func (w *Workbook) Names() []string {
	return append([]string(nil), w.names...)
}

// Each calls fn for every sheet in order.
func (w *Workbook) Each(fn func(name string, sheet Sheet)) {
	for _, name := range w.names {
		fn(name, w.sheets[name])
	}
}

// RoundNumbers rounds every numeric data cell in every sheet.
// It reports whether any cell changed.
func (w *Workbook) RoundNumbers() bool {
	changed := false
	for _, name := range w.names {
		s := w.sheets[name]
		if s.RoundNumbers() {
			changed = true
		}
	}
	return changed
}

// MarshalJSON implements json.Marshaler, writing sheets in order.
func (w *Workbook) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range w.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		body, err := marshalNoEscape(w.sheets[name])
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping sheets in document order.
func (w *Workbook) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("workbook: expected object, got %v", tok)
	}

	w.names = nil
	w.sheets = make(map[string]Sheet)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("workbook: expected sheet name, got %v", tok)
		}
		var sheet Sheet
		if err := dec.Decode(&sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		w.Set(name, sheet)
	}
	_, err = dec.Token()
	return err
}

// marshalNoEscape is json.Marshal without HTML escaping.
func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
