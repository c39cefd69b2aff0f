package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

// XLSXExtractor reads one grid per non-empty worksheet, first row = header.
type XLSXExtractor struct {
	logger *slog.Logger
}

func NewXLSXExtractor(logger *slog.Logger) *XLSXExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXExtractor{logger: logger}
}

func (e *XLSXExtractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	res := ExtractionResult{SourceType: constants.XLSX, Method: "xlsx-sheets"}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return res, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Error("close workbook", "path", path, "error", cerr)
		}
	}()

	sheets := f.GetSheetList()
	res.Pages = len(sheets)

	for i, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("sheet %q: %v", sheet, err))
			continue
		}
		if len(rows) == 0 {
			continue
		}
		res.Grids = append(res.Grids, entity.RawGrid{
			Header: rows[0],
			Rows:   rows[1:],
			Page:   i + 1,
		})
	}

	res.Duration = time.Since(start)
	e.logger.Info("extract.xlsx.ok",
		"path", path,
		"sheets", len(sheets),
		"grids", len(res.Grids),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
