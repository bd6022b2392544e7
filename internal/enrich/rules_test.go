package enrich

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRulesCompile(t *testing.T) {
	rules := DefaultRules()
	if rules.MinDescription <= 0 || rules.MaxSummary <= 0 {
		t.Error("defaults missing thresholds")
	}
	for _, attr := range []string{AttrEra, AttrRegion, AttrUse, AttrMaterial, AttrStyle} {
		if len(rules.Vocabulary(attr)) == 0 {
			t.Errorf("empty vocabulary for %s", attr)
		}
	}
}

func writeRules(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRules(t *testing.T) {
	path := writeRules(t, `
categories:
  Furniture: furniture
poa_markers: [poa]
min_description: 10
era:
  - pattern: \bvictorian\b
    value: victorian
    strength: strong
    year_from: 1837
    year_to: 1901
`)

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if rules.Categories["Furniture"] != "furniture" {
		t.Error("category table not loaded")
	}
	if len(rules.Era) != 1 || rules.Era[0].strength != StrengthStrong {
		t.Errorf("era table not compiled: %+v", rules.Era)
	}
}

func TestLoadRulesErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			"no categories",
			"poa_markers: [poa]\n",
			ErrNoCategories,
		},
		{
			"bad strength",
			"categories: {Furniture: furniture}\nera:\n  - {pattern: x, value: v, strength: huge}\n",
			ErrBadStrength,
		},
		{
			"bad pattern",
			"categories: {Furniture: furniture}\nera:\n  - {pattern: '([', value: v, strength: weak}\n",
			ErrBadPattern,
		},
		{
			"empty value",
			"categories: {Furniture: furniture}\nmaterial:\n  - {pattern: x, value: '', strength: weak}\n",
			ErrEmptyValue,
		},
		{
			"inverted years",
			"categories: {Furniture: furniture}\nera:\n  - {pattern: x, value: v, strength: weak, year_from: 1900, year_to: 1800}\n",
			ErrBadYearRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRules(writeRules(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadRules error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestShippedRulesFile(t *testing.T) {
	rules, err := LoadRules(filepath.Join("..", "..", "configs", "rules.yaml"))
	if err != nil {
		t.Fatalf("configs/rules.yaml does not load: %v", err)
	}
	if rules.Categories["Furniture"] != "furniture" {
		t.Error("shipped rules missing the Furniture category")
	}
	if len(rules.Era) == 0 || len(rules.Material) == 0 {
		t.Error("shipped rules missing attribute tables")
	}
}
