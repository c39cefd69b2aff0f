package delegate

import (
	"testing"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

func TestApply(t *testing.T) {
	items := []entity.LineItem{
		{Description: "Roof shingle replacement", Total: 500, Category: constants.Roofing},
		{Description: "Reroute drain pipe", Total: 200, Category: constants.Plumbing},
	}
	rules := map[constants.Category]string{
		constants.Roofing: "Contractor 1",
	}

	out := Apply(items, rules)

	if out[0].AssignedTo != "Contractor 1" {
		t.Errorf("roofing item assigned to %q", out[0].AssignedTo)
	}
	if out[1].AssignedTo != constants.Unassigned {
		t.Errorf("unruled plumbing item assigned to %q", out[1].AssignedTo)
	}
	if items[0].AssignedTo != "" {
		t.Error("Apply mutated its input")
	}
}

func TestApply_ExplicitUnassignedRule(t *testing.T) {
	items := []entity.LineItem{{Description: "x", Total: 1, Category: constants.Electrical}}
	rules := map[constants.Category]string{constants.Electrical: constants.Unassigned}

	out := Apply(items, rules)
	if out[0].AssignedTo != constants.Unassigned {
		t.Errorf("assigned to %q, want Unassigned", out[0].AssignedTo)
	}
	if out[0].Assigned() {
		t.Error("explicitly unassigned item reported as assigned")
	}
}

func TestApply_Empty(t *testing.T) {
	if out := Apply(nil, nil); len(out) != 0 {
		t.Errorf("expected empty output, got %d items", len(out))
	}
}
