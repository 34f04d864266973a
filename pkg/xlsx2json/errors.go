package xlsx2json

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook or
// JSON document.
var ErrInvalidFormat = errors.New("invalid input format")

// Stage names the conversion step that failed.
type Stage string

const (
	StageLoad      Stage = "load"
	StageTransform Stage = "transform"
	StageSerialize Stage = "serialize"
	StageWrite     Stage = "write"
)

// ConversionError is the single error returned by a failed conversion.
type ConversionError struct {
	Stage Stage
	Path  string
	// SheetName is set when the failure belongs to one sheet.
	SheetName string
	Err       error
}

func (e *ConversionError) Error() string {
	if e.SheetName != "" {
		return fmt.Sprintf("%s %s: sheet %q: %v", e.Stage, e.Path, e.SheetName, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage Stage, path string, err error) *ConversionError {
	return &ConversionError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
