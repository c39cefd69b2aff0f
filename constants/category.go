package constants

import (
	"strings"
)

// Category is a construction trade bucket for estimate line items.
type Category string

const (
	Roofing            Category = "Roofing"
	Electrical         Category = "Electrical"
	Plumbing           Category = "Plumbing"
	DrywallPainting    Category = "Drywall/Painting"
	FoundationConcrete Category = "Foundation/Concrete"
	Other              Category = "Other"
)

// allCategories is the fixed classification order. First keyword match wins,
// so order is part of the contract. Other is the fallback and carries no
// keywords.
var allCategories = []Category{
	Roofing,
	Electrical,
	Plumbing,
	DrywallPainting,
	FoundationConcrete,
	Other,
}

// MatchOrder returns the keyword-bearing categories in classification order.
func MatchOrder() []Category {
	return []Category{Roofing, Electrical, Plumbing, DrywallPainting, FoundationConcrete}
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"roof":       Roofing,
		"electric":   Electrical,
		"drywall":    DrywallPainting,
		"painting":   DrywallPainting,
		"foundation": FoundationConcrete,
		"concrete":   FoundationConcrete,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
