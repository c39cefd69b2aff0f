package extract

import (
	"context"
	"time"

	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

// TableExtractor turns a source document into ordered raw grids.
type TableExtractor interface {
	Extract(ctx context.Context, path string) (ExtractionResult, error)
}

type ExtractionResult struct {
	Grids      []entity.RawGrid
	SourceType string // "PDF" | "XLSX" | "CSV"
	Method     string // "pdf-layout" | "xlsx-sheets" | "csv"
	Pages      int
	Duration   time.Duration
	Warnings   []string
}
