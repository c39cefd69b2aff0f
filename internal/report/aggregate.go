package report

import (
	"math"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

// Summarize computes the derived scalars for a run. An empty item collection
// yields zeros, and the categorized percentage short-circuits to 0 rather
// than dividing by zero.
func Summarize(items []entity.LineItem, rejected int) entity.Summary {
	s := entity.Summary{
		ItemCount:    len(items),
		RejectedRows: rejected,
	}

	categorized := 0
	for _, item := range items {
		s.GrandTotal += item.Total
		if item.Assigned() {
			s.AssignedTotal += item.Total
		} else {
			s.UnassignedTotal += item.Total
		}
		if item.Category != constants.Other {
			categorized++
		}
	}

	if len(items) > 0 {
		s.CategorizedPercentage = int(math.Round(float64(categorized) / float64(len(items)) * 100))
	}
	return s
}

// Payments computes one payment row per contractor: the sum of totals
// assigned to that contractor times its payout fraction. Rows follow the
// configured contractor order; duplicate names collapse to one row with the
// last configured fraction.
func Payments(items []entity.LineItem, cfg entity.RunConfig) []entity.Payment {
	assigned := make(map[string]float64)
	for _, item := range items {
		assigned[item.AssignedTo] += item.Total
	}

	payouts := cfg.PayoutMap()
	names := cfg.ContractorNames()

	out := make([]entity.Payment, 0, len(names))
	for _, name := range names {
		fraction := payouts[name]
		out = append(out, entity.Payment{
			Contractor:     name,
			AssignedTotal:  assigned[name],
			PayoutFraction: fraction,
			Amount:         assigned[name] * fraction,
		})
	}
	return out
}
