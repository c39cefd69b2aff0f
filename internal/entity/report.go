package entity

// Payment is one row of the contractor payment table.
type Payment struct {
	Contractor     string  `json:"contractor"`
	AssignedTotal  float64 `json:"assigned_total"`
	PayoutFraction float64 `json:"payout_fraction"`
	Amount         float64 `json:"amount"`
}

// Summary holds the derived scalars for one run.
type Summary struct {
	GrandTotal      float64 `json:"grand_total"`
	AssignedTotal   float64 `json:"assigned_total"`
	UnassignedTotal float64 `json:"unassigned_total"`
	// CategorizedPercentage is the share of items with a non-Other category,
	// rounded to the nearest integer. Defined as 0 over zero items.
	CategorizedPercentage int `json:"categorized_percentage"`
	ItemCount             int `json:"item_count"`
	RejectedRows          int `json:"rejected_rows"`
}
