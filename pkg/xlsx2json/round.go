package xlsx2json

import (
	"fmt"
	"os"

	"github.com/ukaji3/xlsx2json-go/pkg/xlsx2json/output"
	"go.uber.org/zap"
)

// RoundFile reads any JSON document, rounds every non-integral number in it
// to an integer and writes the result to outputPath, keeping object key
// order. Bare NaN literals, which older pandas based exports wrote, are
// replaced with null first. When outputPath is the input path and nothing
// changed the file is left alone. It reports whether the document was
// written.
func (c *Converter) RoundFile(inputPath, outputPath string) (bool, error) {
	log := c.logger()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return false, NewConversionError(StageLoad, inputPath, err)
	}
	data, repaired := repairNaN(data)

	tree, err := decodeTree(data)
	if err != nil {
		return false, NewConversionError(StageTransform, inputPath, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	tree, rounded := roundTree(tree)

	if !rounded && !repaired && outputPath == inputPath {
		log.Info("no decimals", zap.String("path", inputPath))
		return false, nil
	}

	out, err := output.Marshal(tree)
	if err != nil {
		return false, NewConversionError(StageSerialize, inputPath, err)
	}
	if err := output.WriteFile(outputPath, out); err != nil {
		return false, NewConversionError(StageWrite, outputPath, err)
	}

	log.Info("decimals rounded",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Bool("nan_repaired", repaired))
	return true, nil
}
