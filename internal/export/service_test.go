package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

func TestWorkbookXLSX(t *testing.T) {
	items := []entity.LineItem{
		{
			Description: "Roof shingle replacement",
			Total:       500,
			Quantity:    "20",
			Unit:        "SQ",
			Category:    constants.Roofing,
			AssignedTo:  "Contractor 1",
		},
		{
			Description: "Misc labor",
			Total:       100,
			Category:    constants.Other,
			AssignedTo:  constants.Unassigned,
		},
	}
	payments := []entity.Payment{
		{Contractor: "Contractor 1", AssignedTotal: 500, PayoutFraction: 0.85, Amount: 425},
	}
	summary := entity.Summary{
		GrandTotal:            600,
		AssignedTotal:         500,
		UnassignedTotal:       100,
		CategorizedPercentage: 50,
		ItemCount:             2,
	}

	data, err := NewService(nil).WorkbookXLSX(items, payments, summary)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Line Items", "Payments", "Summary"}, f.GetSheetList())

	got := func(sheet, cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Description", got("Line Items", "A1"))
	assert.Equal(t, "Roof shingle replacement", got("Line Items", "A2"))
	assert.Equal(t, "Roofing", got("Line Items", "B2"))
	assert.Equal(t, "Contractor 1", got("Line Items", "C2"))
	assert.Equal(t, "500", got("Line Items", "F2"))
	assert.Equal(t, "Unassigned", got("Line Items", "C3"))

	assert.Equal(t, "Contractor 1", got("Payments", "A2"))
	assert.Equal(t, "85%", got("Payments", "C2"))
	assert.Equal(t, "425", got("Payments", "D2"))

	assert.Equal(t, "Total Estimate Value", got("Summary", "A1"))
	assert.Equal(t, "$600.00", got("Summary", "B1"))
	assert.Equal(t, "50%", got("Summary", "B4"))
}

func TestWorkbookXLSX_EmptyRun(t *testing.T) {
	data, err := NewService(nil).WorkbookXLSX(nil, nil, entity.Summary{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "$0.00", v)
}
