package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/estimate-tools/estimate-delegator/internal/columns"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

// Result carries the normalized line items plus the count of rows dropped on
// the way. Rejected rows are expected, not exceptional; the count is surfaced
// for the summary, never as an error.
type Result struct {
	Items    []entity.LineItem
	Rejected int
}

// Rows turns raw grids into line items using the resolved column roles.
// A row is dropped when its description or total cell is empty or missing,
// or when the total does not parse after currency stripping. Quantity and
// unit are carried as text when those roles resolved.
func Rows(grids []entity.RawGrid, res columns.Resolution) Result {
	var out Result

	descCol := res.Column(columns.RoleDescription)
	totalCol := res.Column(columns.RoleTotal)
	qtyCol := res.Column(columns.RoleQuantity)
	unitCol := res.Column(columns.RoleUnit)

	for _, grid := range grids {
		if grid.DataRows() == 0 {
			continue
		}
		idx := headerIndex(grid.Header)
		descIdx, okDesc := idx[descCol]
		totalIdx, okTotal := idx[totalCol]
		if !okDesc || !okTotal {
			// This grid never had the resolved columns; all its rows are
			// unusable.
			out.Rejected += grid.DataRows()
			continue
		}

		for _, row := range grid.Rows {
			desc := strings.TrimSpace(cell(row, descIdx))
			rawTotal := strings.TrimSpace(cell(row, totalIdx))
			if desc == "" || rawTotal == "" {
				out.Rejected++
				continue
			}
			total, err := ParseAmount(rawTotal)
			if err != nil {
				out.Rejected++
				continue
			}
			item := entity.LineItem{
				Description: desc,
				Total:       total,
			}
			if qtyCol != "" {
				if i, ok := idx[qtyCol]; ok {
					item.Quantity = strings.TrimSpace(cell(row, i))
				}
			}
			if unitCol != "" {
				if i, ok := idx[unitCol]; ok {
					item.Unit = strings.TrimSpace(cell(row, i))
				}
			}
			out.Items = append(out.Items, item)
		}
	}
	return out
}

// ParseAmount strips currency symbols and thousands separators and parses the
// remainder as a real number. Idempotent: already-numeric text passes through
// unchanged. Non-finite results are rejected, never coerced to zero.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(s, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// headerIndex maps normalized header names to their column position. On a
// duplicate header the first occurrence wins.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := columns.Normalize(h)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return idx
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
