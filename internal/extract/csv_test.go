package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCSVExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.csv")
	content := "Description,Qty,Unit,Total\n" +
		"Roof shingle replacement,20,SQ,\"$500.00\"\n" +
		"Misc labor,4,HR,$100\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := NewCSVExtractor(nil).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(res.Grids) != 1 {
		t.Fatalf("grids = %d, want 1", len(res.Grids))
	}

	g := res.Grids[0]
	if g.Header[0] != "Description" || g.Header[3] != "Total" {
		t.Errorf("unexpected header: %v", g.Header)
	}
	if len(g.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(g.Rows))
	}
	if g.Rows[0][3] != "$500.00" {
		t.Errorf("quoted cell mangled: %v", g.Rows[0])
	}
}

func TestCSVExtract_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	res, err := NewCSVExtractor(nil).Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(res.Grids) != 0 {
		t.Errorf("expected no grids from an empty file, got %d", len(res.Grids))
	}
}

func TestCSVExtract_MissingFile(t *testing.T) {
	if _, err := NewCSVExtractor(nil).Extract(context.Background(), "/nonexistent.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}
