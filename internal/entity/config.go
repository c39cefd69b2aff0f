package entity

import (
	"github.com/estimate-tools/estimate-delegator/constants"
)

// Contractor is one (name, payout fraction) pair from the run configuration.
type Contractor struct {
	Name           string  `json:"name"`
	PayoutFraction float64 `json:"payout_fraction"`
}

// DelegationRule assigns a category to a contractor (or Unassigned).
type DelegationRule struct {
	Category   constants.Category `json:"category"`
	AssignedTo string             `json:"assigned_to"`
}

// RunConfig is the immutable configuration for a single pipeline run,
// supplied by the hosting presentation layer.
type RunConfig struct {
	Contractors []Contractor     `json:"contractors"`
	Rules       []DelegationRule `json:"rules"`
}

// PayoutMap collapses the contractor list into name -> payout fraction.
// Duplicate names overwrite earlier entries.
func (c RunConfig) PayoutMap() map[string]float64 {
	m := make(map[string]float64, len(c.Contractors))
	for _, ct := range c.Contractors {
		m[ct.Name] = ct.PayoutFraction
	}
	return m
}

// ContractorNames returns the contractor names in first-seen order with
// duplicates removed.
func (c RunConfig) ContractorNames() []string {
	seen := make(map[string]struct{}, len(c.Contractors))
	names := make([]string, 0, len(c.Contractors))
	for _, ct := range c.Contractors {
		if _, ok := seen[ct.Name]; ok {
			continue
		}
		seen[ct.Name] = struct{}{}
		names = append(names, ct.Name)
	}
	return names
}

// RuleMap collapses the rule list into category -> contractor. Later entries
// for the same category overwrite earlier ones.
func (c RunConfig) RuleMap() map[constants.Category]string {
	m := make(map[constants.Category]string, len(c.Rules))
	for _, r := range c.Rules {
		m[r.Category] = r.AssignedTo
	}
	return m
}
