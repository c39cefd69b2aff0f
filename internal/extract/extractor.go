package extract

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/estimate-tools/estimate-delegator/constants"
)

// ForPath picks the extractor matching the document's extension.
func ForPath(path string, logger *slog.Logger) (TableExtractor, error) {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.PDF:
		return NewPDFExtractor(PDFConfig{}, logger), nil
	case constants.XLSX:
		return NewXLSXExtractor(logger), nil
	case constants.CSV:
		return NewCSVExtractor(logger), nil
	default:
		return nil, fmt.Errorf("unsupported document type: %s", filepath.Ext(path))
	}
}
