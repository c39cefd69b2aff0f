package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/classify"
	"github.com/estimate-tools/estimate-delegator/internal/columns"
	"github.com/estimate-tools/estimate-delegator/internal/common"
	"github.com/estimate-tools/estimate-delegator/internal/delegate"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
	"github.com/estimate-tools/estimate-delegator/internal/extract"
	"github.com/estimate-tools/estimate-delegator/internal/normalize"
	"github.com/estimate-tools/estimate-delegator/internal/report"
)

// Processor coordinates extraction, column resolution, normalization,
// classification, delegation and aggregation for a single document. It holds
// no state between runs; every stage returns a fresh collection.
type Processor struct {
	Logger    *slog.Logger
	Extractor extract.TableExtractor
	Keywords  classify.Keywords
	Config    entity.RunConfig
}

func NewProcessor(logger *slog.Logger, extractor extract.TableExtractor, kw classify.Keywords, cfg entity.RunConfig) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if kw == nil {
		kw = classify.Default()
	}
	return &Processor{Logger: logger, Extractor: extractor, Keywords: kw, Config: cfg}
}

// Resolution is the phase-1 output: extracted grids plus the column role map.
// When NeedsColumns is set the caller must supply a manual mapping to
// Complete; nothing downstream has run yet.
type Resolution struct {
	RunID        uuid.UUID
	Grids        []entity.RawGrid
	Columns      columns.Resolution
	NeedsColumns bool
	Warnings     []string
}

// Result is the immutable output of a completed run.
type Result struct {
	RunID    uuid.UUID
	Items    []entity.LineItem
	Payments []entity.Payment
	Summary  entity.Summary
}

// Resolve runs phase 1: extract the document's grids, drop header-only ones,
// and attempt automatic column resolution. A document with no usable tables
// is an EmptyExtraction error; unresolved mandatory columns are not an error
// here, they flag the resolution as needing manual input.
func (p *Processor) Resolve(ctx context.Context, path string) (*Resolution, error) {
	runID := uuid.New()

	ext, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		p.Logger.Error("pipeline.extract.failed", "run_id", runID, "path", path, "error", err)
		return nil, fmt.Errorf("extract tables: %w", err)
	}

	grids := make([]entity.RawGrid, 0, len(ext.Grids))
	for _, g := range ext.Grids {
		if g.DataRows() == 0 {
			continue // header-only table
		}
		grids = append(grids, g)
	}
	if len(grids) == 0 {
		p.Logger.Warn("pipeline.extract.empty", "run_id", runID, "path", path, "status", constants.RunStatusFailed)
		return nil, common.NewAppError("EMPTY_EXTRACTION",
			"no line-item tables found in document", common.ErrEmptyExtraction)
	}

	res := columns.Resolve(collectColumns(grids))

	r := &Resolution{
		RunID:        runID,
		Grids:        grids,
		Columns:      res,
		NeedsColumns: !res.Complete(),
		Warnings:     ext.Warnings,
	}

	if r.NeedsColumns {
		p.Logger.Warn("pipeline.resolve.incomplete",
			"run_id", runID,
			"status", constants.RunStatusNeedsColumns,
			"missing", rolesToStrings(res.Missing()),
			"candidates", res.Columns,
		)
	} else {
		p.Logger.Info("pipeline.resolve.ok",
			"run_id", runID,
			"grids", len(grids),
			"description_col", res.Column(columns.RoleDescription),
			"total_col", res.Column(columns.RoleTotal),
		)
	}
	return r, nil
}

// Complete runs phase 2 on a resolution, optionally overlaying a manual
// column mapping first. It fails, emitting no partial result, when the
// mandatory roles are still unresolved.
func (p *Processor) Complete(ctx context.Context, r *Resolution, overrides map[columns.Role]string) (*Result, error) {
	res := r.Columns
	if len(overrides) > 0 {
		applied, err := res.Apply(overrides)
		if err != nil {
			return nil, common.NewAppError("COLUMN_OVERRIDE", "manual column mapping rejected", err)
		}
		res = applied
	}
	if !res.Complete() {
		p.Logger.Error("pipeline.columns.unresolved",
			"run_id", r.RunID,
			"status", constants.RunStatusFailed,
			"missing", rolesToStrings(res.Missing()),
		)
		return nil, common.NewAppError("COLUMNS_UNRESOLVED",
			fmt.Sprintf("could not map columns: %s", strings.Join(rolesToStrings(res.Missing()), ", ")),
			common.ErrColumnsUnresolved)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	norm := normalize.Rows(r.Grids, res)
	items := classify.Apply(norm.Items, p.Keywords)
	items = delegate.Apply(items, p.Config.RuleMap())

	result := &Result{
		RunID:    r.RunID,
		Items:    items,
		Payments: report.Payments(items, p.Config),
		Summary:  report.Summarize(items, norm.Rejected),
	}

	p.Logger.Info("pipeline.run.ok",
		"run_id", r.RunID,
		"status", constants.RunStatusDone,
		"items", len(items),
		"rejected_rows", norm.Rejected,
		"grand_total", result.Summary.GrandTotal,
		"assigned_total", result.Summary.AssignedTotal,
		"categorized_pct", result.Summary.CategorizedPercentage,
	)
	return result, nil
}

// Run is the single-shot convenience for hosts that already have any manual
// mapping in hand: Resolve then Complete.
func (p *Processor) Run(ctx context.Context, path string, overrides map[columns.Role]string) (*Result, error) {
	r, err := p.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.Complete(ctx, r, overrides)
}

// collectColumns gathers the normalized union of column names across grids,
// in order of first appearance.
func collectColumns(grids []entity.RawGrid) []string {
	seen := make(map[string]struct{})
	var cols []string
	for _, g := range grids {
		for _, h := range g.Header {
			name := columns.Normalize(h)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			cols = append(cols, name)
		}
	}
	return cols
}

func rolesToStrings(roles []columns.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
