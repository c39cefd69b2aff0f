package entity

import (
	"github.com/estimate-tools/estimate-delegator/constants"
)

// LineItem represents one unit of work from an estimate for data transfer
// between stages. Each stage returns a new slice of items; an item is never
// mutated after the stage that produced it.
type LineItem struct {
	Description string             `json:"description"`
	Total       float64            `json:"total"`
	Quantity    string             `json:"quantity,omitempty"`
	Unit        string             `json:"unit,omitempty"`
	Category    constants.Category `json:"category,omitempty"`
	AssignedTo  string             `json:"assigned_to,omitempty"`
}

// Assigned reports whether the item has been delegated to a contractor.
func (li LineItem) Assigned() bool {
	return li.AssignedTo != "" && li.AssignedTo != constants.Unassigned
}
