package config

import (
	"github.com/estimate-tools/estimate-delegator/constants"
)

// BuildRunConfigJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We use it locally to validate run configuration files before
// decoding them.
func BuildRunConfigJSONSchema() map[string]any {
	contractor := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":            map[string]any{"type": "string", "minLength": 1},
			"payout_fraction": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"name", "payout_fraction"},
	}

	rule := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"category":    map[string]any{"type": "string", "enum": constants.AsStringSlice()},
			"assigned_to": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"category", "assigned_to"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"contractors": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 5,
				"items":    contractor,
			},
			"rules": map[string]any{
				"type":     "array",
				"maxItems": 10,
				"items":    rule,
			},
		},
		"required": []string{"contractors"},
	}
}
