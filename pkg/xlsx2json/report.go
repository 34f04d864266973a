package xlsx2json

import (
	"github.com/ukaji3/xlsx2json-go/pkg/xlsx2json/models"
	"go.uber.org/zap"
)

// SheetSummary holds the size of one converted sheet.
type SheetSummary struct {
	Name    string
	Rows    int
	Columns int
}

// Report summarizes a finished conversion.
type Report struct {
	InputPath  string
	OutputPath string
	Sheets     []SheetSummary
}

// NewReport builds a report for wb in sheet order.
func NewReport(inputPath, outputPath string, wb *models.Workbook) *Report {
	r := &Report{InputPath: inputPath, OutputPath: outputPath}
	wb.Each(func(name string, sheet models.Sheet) {
		r.Sheets = append(r.Sheets, SheetSummary{
			Name:    name,
			Rows:    sheet.NumRows(),
			Columns: sheet.NumColumns(),
		})
	})
	return r
}

// Log writes the report as one success line, one count line and one line
// per sheet.
func (r *Report) Log(log *zap.Logger) {
	log.Info("conversion complete",
		zap.String("input", r.InputPath),
		zap.String("output", r.OutputPath))
	log.Info("sheet count", zap.Int("sheets", len(r.Sheets)))
	for _, s := range r.Sheets {
		log.Info("sheet",
			zap.String("name", s.Name),
			zap.Int("rows", s.Rows),
			zap.Int("columns", s.Columns))
	}
}
