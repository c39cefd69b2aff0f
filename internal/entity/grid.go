package entity

// RawGrid is one table as it came off a document page or sheet: an ordered
// header row plus ordered data rows of cell text. Cells may be empty or
// malformed; nothing is validated at this stage.
type RawGrid struct {
	// Header holds the column names. The pipeline normalizes them before
	// column resolution; adapters store them as extracted.
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
	// Page is the 1-based page or sheet position the grid came from.
	Page int `json:"page"`
}

// DataRows reports the number of non-header rows.
func (g RawGrid) DataRows() int {
	return len(g.Rows)
}
