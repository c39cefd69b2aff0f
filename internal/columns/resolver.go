package columns

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
)

// Role is a semantic column role in an estimate table.
type Role string

const (
	RoleDescription Role = "description"
	RoleTotal       Role = "total"
	RoleQuantity    Role = "quantity"
	RoleUnit        Role = "unit"
)

// MandatoryRoles are the roles the pipeline cannot proceed without.
var MandatoryRoles = []Role{RoleDescription, RoleTotal}

// similarityThreshold is on a 0-100 scale: a column qualifies for a role when
// its levenshtein similarity to the canonical name exceeds it, roughly 30%
// character-level divergence.
const similarityThreshold = 70

type roleSpec struct {
	role      Role
	canonical string
	synonyms  []string
}

var levParams = levenshtein.NewParams()

// Vendor formats disagree on header wording; the synonyms cover the common
// Xactimate/Symbility variants.
var specs = []roleSpec{
	{role: RoleDescription, canonical: "description", synonyms: []string{"desc"}},
	{role: RoleTotal, canonical: "total", synonyms: []string{"price", "rcv"}},
	{role: RoleQuantity, canonical: "quantity", synonyms: []string{"qty"}},
	{role: RoleUnit, canonical: "unit"},
}

// Resolution maps roles to normalized column names. Quantity and unit may be
// absent; a Resolution with both mandatory roles present is complete.
type Resolution struct {
	Roles   map[Role]string
	Columns []string // normalized candidate columns, input order
}

// Complete reports whether both mandatory roles resolved.
func (r Resolution) Complete() bool {
	return len(r.Missing()) == 0
}

// Missing returns the unresolved mandatory roles.
func (r Resolution) Missing() []Role {
	var missing []Role
	for _, role := range MandatoryRoles {
		if r.Roles[role] == "" {
			missing = append(missing, role)
		}
	}
	return missing
}

// Column returns the resolved column for a role, or "".
func (r Resolution) Column(role Role) string {
	return r.Roles[role]
}

// Normalize lowercases a raw column name, trims it, replaces spaces with
// underscores and strips dots, so header spelling differences across vendor
// formats collapse before matching.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "_")
	n = strings.ReplaceAll(n, ".", "")
	return n
}

// Resolve scans normalized column names in input order and assigns each role
// the last column that matches its criteria. Unmatched optional roles stay
// empty; the caller decides what an incomplete result means.
func Resolve(columnNames []string) Resolution {
	res := Resolution{
		Roles:   make(map[Role]string, len(specs)),
		Columns: columnNames,
	}
	for _, col := range columnNames {
		for _, spec := range specs {
			if matchesRole(col, spec) {
				res.Roles[spec.role] = col
			}
		}
	}
	return res
}

func matchesRole(col string, spec roleSpec) bool {
	if levenshtein.Similarity(col, spec.canonical, levParams)*100 > similarityThreshold {
		return true
	}
	for _, syn := range spec.synonyms {
		if strings.Contains(col, syn) {
			return true
		}
	}
	return false
}

// Apply overlays an explicit user mapping onto the resolution and returns a
// new one. Overrides must name known columns; an unknown column is an error
// rather than a silent miss.
func (r Resolution) Apply(overrides map[Role]string) (Resolution, error) {
	known := make(map[string]struct{}, len(r.Columns))
	for _, c := range r.Columns {
		known[c] = struct{}{}
	}

	merged := Resolution{
		Roles:   make(map[Role]string, len(r.Roles)+len(overrides)),
		Columns: r.Columns,
	}
	for role, col := range r.Roles {
		merged.Roles[role] = col
	}
	for role, col := range overrides {
		norm := Normalize(col)
		if _, ok := known[norm]; !ok {
			return Resolution{}, fmt.Errorf("override %s=%q: no such column", role, col)
		}
		merged.Roles[role] = norm
	}
	return merged, nil
}
