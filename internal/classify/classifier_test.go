package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/estimate-tools/estimate-delegator/constants"
	"github.com/estimate-tools/estimate-delegator/internal/entity"
)

func TestCategorize(t *testing.T) {
	kw := Default()
	cases := []struct {
		desc string
		want constants.Category
	}{
		{"Install asphalt shingle roof", constants.Roofing},
		{"Ice water shield at eaves", constants.Roofing},
		{"Patch drywall ceiling", constants.DrywallPainting},
		{"Replace electrical outlet and wiring", constants.Electrical},
		{"Reroute drain pipe under slab", constants.Plumbing},
		{"Pour concrete footing", constants.FoundationConcrete},
		{"Generic cleanup", constants.Other},
		{"", constants.Other},
	}
	for _, c := range cases {
		if got := Categorize(c.desc, kw); got != c.want {
			t.Errorf("Categorize(%q) = %s, want %s", c.desc, got, c.want)
		}
	}
}

func TestCategorize_FirstMatchWins(t *testing.T) {
	// "fixture" appears in both the Electrical and Plumbing lists; the fixed
	// match order makes Electrical win.
	if got := Categorize("Replace bathroom fixture", Default()); got != constants.Electrical {
		t.Errorf("fixture categorized as %s, want Electrical", got)
	}
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	if got := Categorize("INSTALL SHINGLE RIDGE CAP", Default()); got != constants.Roofing {
		t.Errorf("uppercase description categorized as %s", got)
	}
}

func TestApply_SetsExactlyOneCategory(t *testing.T) {
	items := []entity.LineItem{
		{Description: "Roof shingle replacement", Total: 500},
		{Description: "Misc labor", Total: 100},
	}
	out := Apply(items, Default())
	if out[0].Category != constants.Roofing {
		t.Errorf("first item category = %s", out[0].Category)
	}
	if out[1].Category != constants.Other {
		t.Errorf("second item category = %s", out[1].Category)
	}
	// Inputs stay untouched.
	if items[0].Category != "" {
		t.Error("Apply mutated its input")
	}
}

func TestLoad_OverridesNamedCategoriesOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "Roofing:\n  - Membrane\n  - tpo\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	kw, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := Categorize("Install TPO membrane", kw); got != constants.Roofing {
		t.Errorf("override keyword not applied, got %s", got)
	}
	// Replaced list: the old Roofing keywords are gone.
	if got := Categorize("Install asphalt shingle roof", kw); got != constants.Other {
		t.Errorf("expected replaced Roofing list, got %s", got)
	}
	// Unmentioned categories keep defaults.
	if got := Categorize("Patch drywall ceiling", kw); got != constants.DrywallPainting {
		t.Errorf("default keywords lost, got %s", got)
	}
}

func TestLoad_UnknownCategoryRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	if err := os.WriteFile(path, []byte("Landscaping:\n  - sod\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown category")
	}
}
