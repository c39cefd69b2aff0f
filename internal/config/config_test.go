package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estimate-tools/estimate-delegator/constants"
)

func TestParse_Valid(t *testing.T) {
	data := []byte(`{
		"contractors": [
			{"name": "Contractor 1", "payout_fraction": 0.85},
			{"name": "Contractor 2", "payout_fraction": 0.5}
		],
		"rules": [
			{"category": "Roofing", "assigned_to": "Contractor 1"},
			{"category": "Plumbing", "assigned_to": "Unassigned"}
		]
	}`)

	cfg, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, cfg.Contractors, 2)
	require.Len(t, cfg.Rules, 2)

	assert.Equal(t, constants.Roofing, cfg.Rules[0].Category)
	assert.Equal(t, "Contractor 1", cfg.Rules[0].AssignedTo)
	assert.Equal(t, constants.Unassigned, cfg.Rules[1].AssignedTo)

	payouts := cfg.PayoutMap()
	assert.Equal(t, 0.85, payouts["Contractor 1"])
}

func TestParse_PayoutOutOfRange(t *testing.T) {
	data := []byte(`{"contractors": [{"name": "A", "payout_fraction": 1.2}]}`)
	_, err := Parse(data)
	require.Error(t, err)
}

func TestParse_TooManyContractors(t *testing.T) {
	data := []byte(`{"contractors": [
		{"name": "A", "payout_fraction": 0.1},
		{"name": "B", "payout_fraction": 0.1},
		{"name": "C", "payout_fraction": 0.1},
		{"name": "D", "payout_fraction": 0.1},
		{"name": "E", "payout_fraction": 0.1},
		{"name": "F", "payout_fraction": 0.1}
	]}`)
	_, err := Parse(data)
	require.Error(t, err)
}

func TestParse_NoContractors(t *testing.T) {
	_, err := Parse([]byte(`{"contractors": []}`))
	require.Error(t, err)
}

func TestParse_UnknownRuleTarget(t *testing.T) {
	data := []byte(`{
		"contractors": [{"name": "A", "payout_fraction": 0.85}],
		"rules": [{"category": "Roofing", "assigned_to": "Nobody"}]
	}`)
	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown contractor")
}

func TestParse_UnknownCategory(t *testing.T) {
	data := []byte(`{
		"contractors": [{"name": "A", "payout_fraction": 0.85}],
		"rules": [{"category": "Landscaping", "assigned_to": "A"}]
	}`)
	_, err := Parse(data)
	require.Error(t, err)
}

func TestParse_LaterRuleOverwrites(t *testing.T) {
	data := []byte(`{
		"contractors": [
			{"name": "A", "payout_fraction": 0.85},
			{"name": "B", "payout_fraction": 0.5}
		],
		"rules": [
			{"category": "Roofing", "assigned_to": "A"},
			{"category": "Roofing", "assigned_to": "B"}
		]
	}`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "B", cfg.RuleMap()[constants.Roofing])
}
