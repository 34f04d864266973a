// Package output serializes converted workbooks.
package output

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ukaji3/xlsx2json-go/pkg/xlsx2json/models"
)

// Indent is the indentation used for every nesting level.
const Indent = "  "

// ToJSON serializes a workbook as an indented JSON object keyed by sheet
// name in workbook order. Non-ASCII and HTML characters are written as is.
func ToJSON(wb *models.Workbook) ([]byte, error) {
	return Marshal(wb)
}

// Marshal encodes any JSON value with the same indentation and escaping
// rules as ToJSON.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile writes data to path as UTF-8, replacing any existing content.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
