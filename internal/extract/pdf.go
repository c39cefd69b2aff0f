package extract

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

// PDFConfig holds the external tool and parsing knobs for PDF extraction.
type PDFConfig struct {
	Pdftotext string // default "pdftotext"
	// MinGridRows is the smallest run of equally-shaped lines treated as a
	// table (header included). Default 2.
	MinGridRows int
}

// PDFExtractor recovers line-item grids from estimate PDFs. It extracts
// layout-preserved text with pdftotext and reconstructs tables from runs of
// lines that agree on a column count, the columns being separated by two or
// more spaces.
type PDFExtractor struct {
	cfg    PDFConfig
	runner Runner
	logger *slog.Logger
}

func NewPDFExtractor(cfg PDFConfig, logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.MinGridRows <= 0 {
		cfg.MinGridRows = 2
	}
	return &PDFExtractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	res := ExtractionResult{SourceType: constants.PDF, Method: "pdf-layout"}

	// pdfcpu validates the document and gives us an authoritative page count;
	// when it cannot (encrypted, odd producer), fall back to counting form
	// feeds in the text output.
	pages, err := api.PageCountFile(path)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("page count unavailable: %v", err))
	}

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		res.Warnings = append(res.Warnings, string(errb))
		return res, fmt.Errorf("pdftotext: %w", err)
	}
	text := string(out)

	if pages == 0 {
		// A form-feed \f is used as page separator by default.
		pages = 1 + strings.Count(text, "\f")
	}
	res.Pages = pages

	for i, pageText := range strings.Split(text, "\f") {
		for _, grid := range parseLayoutGrids(pageText, e.cfg.MinGridRows) {
			grid.Page = i + 1
			res.Grids = append(res.Grids, grid)
		}
	}

	res.Duration = time.Since(start)
	e.logger.Info("extract.pdf.ok",
		"path", path,
		"pages", res.Pages,
		"grids", len(res.Grids),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// columnGap splits a layout-preserved line into cells. Single spaces belong
// to cell text; two or more separate columns.
var columnGap = regexp.MustCompile(`\s{2,}`)

// parseLayoutGrids walks a page's lines and collects maximal runs of
// consecutive lines with the same cell count (>= 2). A run of at least
// minRows becomes a grid, its first line the header. Blank lines and lines
// with a different shape end the current run.
func parseLayoutGrids(pageText string, minRows int) []entity.RawGrid {
	var grids []entity.RawGrid
	var block [][]string

	flush := func() {
		if len(block) >= minRows {
			grids = append(grids, entity.RawGrid{
				Header: block[0],
				Rows:   block[1:],
			})
		}
		block = nil
	}

	for _, line := range strings.Split(pageText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		cells := columnGap.Split(trimmed, -1)
		if len(cells) < 2 {
			flush()
			continue
		}
		if len(block) > 0 && len(cells) != len(block[0]) {
			flush()
		}
		block = append(block, cells)
	}
	flush()
	return grids
}
