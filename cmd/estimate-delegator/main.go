package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/estimate-tools/estimate-delegator/internal/classify"
	"github.com/estimate-tools/estimate-delegator/internal/columns"
	"github.com/estimate-tools/estimate-delegator/internal/common"
	"github.com/estimate-tools/estimate-delegator/internal/config"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
	"github.com/estimate-tools/estimate-delegator/internal/export"
	"github.com/estimate-tools/estimate-delegator/internal/extract"
	"github.com/estimate-tools/estimate-delegator/internal/pipeline"
	"github.com/estimate-tools/estimate-delegator/internal/report"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		doc      = flag.String("doc", "", "estimate document to process, PDF/XLSX/CSV (required)")
		cfgPath  = flag.String("config", "", "contractor + rule configuration JSON (required)")
		keywords = flag.String("keywords", "", "optional category keywords YAML")
		out      = flag.String("out", "", "optional XLSX report output path")
		mapping  = flag.String("map", "", "manual column mapping, e.g. description=item,total=rcv_amount")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *doc == "" || *cfgPath == "" {
		printError("Error: --doc and --config are required\n")
		os.Exit(2)
	}

	// Setup logger
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()

	runCfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Error("failed to load run configuration", "path", *cfgPath, "error", err)
		os.Exit(1)
	}

	kw := classify.Default()
	if *keywords != "" {
		kw, err = classify.Load(*keywords)
		if err != nil {
			logger.Error("failed to load keywords", "path", *keywords, "error", err)
			os.Exit(1)
		}
	}

	overrides, err := parseMapping(*mapping)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(2)
	}

	extractor, err := extract.ForPath(*doc, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(2)
	}

	processor := pipeline.NewProcessor(logger, extractor, kw, *runCfg)

	resolution, err := processor.Resolve(ctx, *doc)
	if err != nil {
		if errors.Is(err, common.ErrEmptyExtraction) {
			printError("No tables detected. Ensure the document has line-item tables.\n")
			os.Exit(3)
		}
		logger.Error("resolve failed", "error", err)
		os.Exit(1)
	}

	if resolution.NeedsColumns && len(overrides) == 0 {
		printError("Could not auto-detect columns: missing %s.\n",
			strings.Join(missingRoles(resolution), ", "))
		printError("Available columns: %s\n", strings.Join(resolution.Columns.Columns, ", "))
		printError("Re-run with --map, e.g. --map %s=<column>\n", missingRoles(resolution)[0])
		os.Exit(4)
	}

	result, err := processor.Complete(ctx, resolution, overrides)
	if err != nil {
		if errors.Is(err, common.ErrColumnsUnresolved) {
			printError("Could not map columns — check the document's tables.\n")
			os.Exit(4)
		}
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	renderReport(result)

	if *out != "" {
		xlsxBytes, err := export.NewService(logger).WorkbookXLSX(result.Items, result.Payments, result.Summary)
		if err != nil {
			logger.Error("failed to build XLSX report", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "path", *out, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", *out)
	}
}

// parseMapping turns "description=item,total=rcv" into role overrides.
func parseMapping(s string) (map[columns.Role]string, error) {
	if s == "" {
		return nil, nil
	}
	known := map[string]columns.Role{
		"description": columns.RoleDescription,
		"total":       columns.RoleTotal,
		"quantity":    columns.RoleQuantity,
		"unit":        columns.RoleUnit,
	}
	out := make(map[columns.Role]string)
	for _, pair := range strings.Split(s, ",") {
		role, col, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid --map entry %q, want role=column", pair)
		}
		r, found := known[strings.ToLower(strings.TrimSpace(role))]
		if !found {
			return nil, fmt.Errorf("invalid --map role %q", role)
		}
		out[r] = col
	}
	return out, nil
}

func missingRoles(r *pipeline.Resolution) []string {
	missing := r.Columns.Missing()
	out := make([]string, len(missing))
	for i, m := range missing {
		out[i] = string(m)
	}
	return out
}

func renderReport(result *pipeline.Result) {
	fmt.Println("Extracted & Standardized Tasks")
	itemTable(os.Stdout, result.Items, false)

	fmt.Println("\nDelegated Tasks (by Category)")
	itemTable(os.Stdout, result.Items, true)

	fmt.Println("\nContractor Payments")
	payments := tablewriter.NewWriter(os.Stdout)
	payments.SetHeader([]string{"Contractor", "Assigned Total", "Payout %", "Payment Amount"})
	for _, p := range result.Payments {
		payments.Append([]string{
			p.Contractor,
			report.Currency(p.AssignedTotal),
			report.Fraction(p.PayoutFraction),
			report.Currency(p.Amount),
		})
	}
	payments.Render()

	s := result.Summary
	fmt.Printf("\nTotal Estimate Value: %s\n", report.Currency(s.GrandTotal))
	fmt.Printf("Assigned Total:       %s\n", report.Currency(s.AssignedTotal))
	fmt.Printf("Unassigned Total:     %s\n", report.Currency(s.UnassignedTotal))
	fmt.Printf("Categorized %%:        %s\n", report.Percent(s.CategorizedPercentage))
	if s.RejectedRows > 0 {
		fmt.Printf("Rejected rows:        %d\n", s.RejectedRows)
	}
}

func itemTable(w *os.File, items []entity.LineItem, delegated bool) {
	t := tablewriter.NewWriter(w)
	header := []string{"Description", "Qty", "Unit", "Total", "Category"}
	if delegated {
		header = append(header, "Assigned To")
	}
	t.SetHeader(header)
	for _, item := range items {
		row := []string{
			item.Description,
			item.Quantity,
			item.Unit,
			report.Currency(item.Total),
			string(item.Category),
		}
		if delegated {
			row = append(row, item.AssignedTo)
		}
		t.Append(row)
	}
	t.Render()
}
