package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/estimate-tools/estimate-delegator/internal/entity"
	"github.com/estimate-tools/estimate-delegator/internal/report"
)

const (
	sheetItems    = "Line Items"
	sheetPayments = "Payments"
	sheetSummary  = "Summary"
)

// Service produces XLSX bytes for a finished run. It writes nothing to disk;
// the host decides where the bytes go.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WorkbookXLSX renders the delegated line items, the contractor payments and
// the summary scalars as a three-sheet workbook.
func (s *Service) WorkbookXLSX(items []entity.LineItem, payments []entity.Payment, summary entity.Summary) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	for _, sheet := range []string{sheetItems, sheetPayments, sheetSummary} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("new sheet %q: %w", sheet, err)
		}
	}
	// Drop the implicit default sheet.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	if index, err := f.GetSheetIndex(sheetItems); err == nil {
		f.SetActiveSheet(index)
	}

	if err := s.writeItems(f, items); err != nil {
		return nil, err
	}
	if err := s.writePayments(f, payments); err != nil {
		return nil, err
	}
	if err := s.writeSummary(f, summary); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"items", len(items),
		"payments", len(payments),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeItems(f *excelize.File, items []entity.LineItem) error {
	headers := []string{"Description", "Category", "Assigned To", "Quantity", "Unit", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetItems, cell, h)
	}

	row := 2
	for _, item := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheetItems, cell, v)
		}
		write(1, item.Description)
		write(2, string(item.Category))
		write(3, item.AssignedTo)
		write(4, item.Quantity)
		write(5, item.Unit)
		write(6, item.Total)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheetItems, "A", "A", 48) // description
	_ = f.SetColWidth(sheetItems, "B", "C", 20) // category, contractor
	_ = f.SetColWidth(sheetItems, "D", "E", 10)
	_ = f.SetColWidth(sheetItems, "F", "F", 14) // total
	return nil
}

func (s *Service) writePayments(f *excelize.File, payments []entity.Payment) error {
	headers := []string{"Contractor", "Assigned Total", "Payout %", "Payment Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetPayments, cell, h)
	}

	row := 2
	for _, p := range payments {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheetPayments, cell, v)
		}
		write(1, p.Contractor)
		write(2, p.AssignedTotal)
		write(3, report.Fraction(p.PayoutFraction))
		write(4, p.Amount)
		row++
	}

	_ = f.SetColWidth(sheetPayments, "A", "A", 24)
	_ = f.SetColWidth(sheetPayments, "B", "D", 16)
	return nil
}

func (s *Service) writeSummary(f *excelize.File, summary entity.Summary) error {
	rows := []struct {
		label string
		value string
	}{
		{"Total Estimate Value", report.Currency(summary.GrandTotal)},
		{"Assigned Total", report.Currency(summary.AssignedTotal)},
		{"Unassigned Total", report.Currency(summary.UnassignedTotal)},
		{"Categorized %", report.Percent(summary.CategorizedPercentage)},
		{"Line Items", fmt.Sprintf("%d", summary.ItemCount)},
		{"Rejected Rows", fmt.Sprintf("%d", summary.RejectedRows)},
	}
	for i, r := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(sheetSummary, labelCell, r.label)
		_ = f.SetCellValue(sheetSummary, valueCell, r.value)
	}

	_ = f.SetColWidth(sheetSummary, "A", "A", 24)
	_ = f.SetColWidth(sheetSummary, "B", "B", 18)
	return nil
}
