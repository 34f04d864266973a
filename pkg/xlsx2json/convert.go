package xlsx2json

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlsx2json-go/pkg/xlsx2json/models"
	"github.com/ukaji3/xlsx2json-go/pkg/xlsx2json/output"
	"github.com/ukaji3/xlsx2json-go/pkg/xlsx2json/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Convert loads the workbook at path and extracts every sheet in workbook
// order. The returned error, if any, is a *ConversionError.
func Convert(path string, opts Options) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewConversionError(StageLoad, path, classifyOpenError(err))
	}
	defer f.Close()

	wb := models.NewWorkbook(filepath.Base(path))
	for _, sheetName := range f.GetSheetList() {
		sheet, err := parser.ExtractSheet(f, sheetName, opts.naValues())
		if err != nil {
			convErr := NewConversionError(StageTransform, path, err)
			convErr.SheetName = sheetName
			return nil, convErr
		}
		if opts.RoundNumbers {
			sheet.RoundNumbers()
		}
		wb.Set(sheetName, sheet)
	}

	return wb, nil
}

func classifyOpenError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrFileNotFound, err)
	case errors.Is(err, zip.ErrFormat), errors.Is(err, excelize.ErrWorkbookFileFormat):
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return err
}

// Converter converts workbook files to JSON files and reports the result.
type Converter struct {
	Options Options
	// Logger receives progress and error messages. Nil discards them.
	Logger *zap.Logger
}

// NewConverter creates a Converter.
func NewConverter(opts Options, logger *zap.Logger) *Converter {
	return &Converter{Options: opts, Logger: logger}
}

func (c *Converter) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// ConvertFile converts the workbook at inputPath and writes the JSON
// document to outputPath, replacing any existing file. The output file is
// not touched unless the whole workbook was read successfully.
func (c *Converter) ConvertFile(inputPath, outputPath string) (*Report, error) {
	wb, err := Convert(inputPath, c.Options)
	if err != nil {
		return nil, err
	}

	data, err := output.ToJSON(wb)
	if err != nil {
		return nil, NewConversionError(StageSerialize, inputPath, err)
	}

	if err := output.WriteFile(outputPath, data); err != nil {
		return nil, NewConversionError(StageWrite, outputPath, err)
	}

	report := NewReport(inputPath, outputPath, wb)
	report.Log(c.logger())
	return report, nil
}

// Run checks that inputPath exists and converts it to outputPath.
// Every failure is logged and swallowed; the result only tells whether the
// conversion succeeded.
func (c *Converter) Run(inputPath, outputPath string) bool {
	log := c.logger()

	if _, err := os.Stat(inputPath); errors.Is(err, fs.ErrNotExist) {
		log.Warn(ErrFileNotFound.Error(), zap.String("path", inputPath))
		return false
	}

	if _, err := c.ConvertFile(inputPath, outputPath); err != nil {
		log.Error("conversion failed", zap.Error(err))
		return false
	}
	return true
}
