package extract

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

// CSVExtractor treats the whole file as a single grid, first record = header.
type CSVExtractor struct {
	logger *slog.Logger
}

func NewCSVExtractor(logger *slog.Logger) *CSVExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVExtractor{logger: logger}
}

func (e *CSVExtractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	res := ExtractionResult{SourceType: constants.CSV, Method: "csv", Pages: 1}

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("open csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Error("close csv", "path", path, "error", cerr)
		}
	}()

	r := csv.NewReader(f)
	// Estimate exports pad or drop trailing cells; take records as they come.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return res, fmt.Errorf("read csv: %w", err)
	}
	if len(records) > 0 {
		res.Grids = append(res.Grids, entity.RawGrid{
			Header: records[0],
			Rows:   records[1:],
			Page:   1,
		})
	}

	res.Duration = time.Since(start)
	e.logger.Info("extract.csv.ok",
		"path", path,
		"records", len(records),
		"grids", len(res.Grids),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
