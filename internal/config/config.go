package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/common"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

// rawConfig mirrors the on-disk JSON shape before category canonicalization.
type rawConfig struct {
	Contractors []entity.Contractor `json:"contractors"`
	Rules       []struct {
		Category   string `json:"category"`
		AssignedTo string `json:"assigned_to"`
	} `json:"rules"`
}

// Load reads a run configuration file, validates it against the schema, and
// cross-checks rule targets against the contractor list.
func Load(path string) (*entity.RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes run configuration JSON.
func Parse(data []byte) (*entity.RunConfig, error) {
	if err := validateJSONAgainstSchema(BuildRunConfigJSONSchema(), data); err != nil {
		return nil, common.NewAppError("CONFIG_ERROR", "run configuration rejected by schema", err)
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg := &entity.RunConfig{Contractors: raw.Contractors}

	known := make(map[string]struct{}, len(raw.Contractors))
	for _, ct := range raw.Contractors {
		known[ct.Name] = struct{}{}
	}

	for _, r := range raw.Rules {
		cat, ok := constants.Canonicalize(r.Category)
		if !ok {
			return nil, common.NewAppError("CONFIG_ERROR",
				fmt.Sprintf("unknown category %q in rule", r.Category), common.ErrInvalidConfig)
		}
		if r.AssignedTo != constants.Unassigned {
			if _, ok := known[r.AssignedTo]; !ok {
				return nil, common.NewAppError("CONFIG_ERROR",
					fmt.Sprintf("rule for %q names unknown contractor %q", r.Category, r.AssignedTo),
					common.ErrInvalidConfig)
			}
		}
		cfg.Rules = append(cfg.Rules, entity.DelegationRule{Category: cat, AssignedTo: r.AssignedTo})
	}

	return cfg, nil
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
