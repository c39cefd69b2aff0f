package classify

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

// Keywords maps a category to the lowercase substrings that claim a line
// item for it. The lists are configuration data, not logic; Default returns
// the built-in sets and Load overlays lists from a YAML file.
type Keywords map[constants.Category][]string

// Default returns the built-in keyword sets, loosely following CSI
// MasterFormat trade groupings.
func Default() Keywords {
	return Keywords{
		constants.Roofing:            {"shingle", "ridge", "flashing", "felt", "ice water"},
		constants.Electrical:         {"wiring", "outlet", "panel", "fixture"},
		constants.Plumbing:           {"pipe", "vent", "fixture", "drain"},
		constants.DrywallPainting:    {"drywall", "paint", "texture", "ceiling"},
		constants.FoundationConcrete: {"footing", "pile", "rebar", "concrete"},
	}
}

// Load reads keyword overrides from a YAML file keyed by category name.
// Categories the file does not mention keep their defaults; an unknown
// category name is an error.
func Load(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keywords: %w", err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse keywords: %w", err)
	}

	kw := Default()
	for name, list := range raw {
		cat, ok := constants.Canonicalize(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q in keywords file", name)
		}
		lowered := make([]string, 0, len(list))
		for _, k := range list {
			lowered = append(lowered, strings.ToLower(strings.TrimSpace(k)))
		}
		kw[cat] = lowered
	}
	return kw, nil
}

// Categorize assigns the first category, in the fixed match order, owning a
// keyword contained in the description. Other when nothing matches.
func Categorize(description string, kw Keywords) constants.Category {
	desc := strings.ToLower(description)
	for _, cat := range constants.MatchOrder() {
		for _, keyword := range kw[cat] {
			if strings.Contains(desc, keyword) {
				return cat
			}
		}
	}
	return constants.Other
}

// Apply returns a new item slice with categories set. Exactly one category
// per item; input items are not touched.
func Apply(items []entity.LineItem, kw Keywords) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	for i, item := range items {
		item.Category = Categorize(item.Description, kw)
		out[i] = item
	}
	return out
}
