package enrich

import (
	"reflect"
	"testing"

	"aaprj/internal/model"
)

func normRecord(url, title, description string, price *float64) model.NormalizedRecord {
	return model.NormalizedRecord{
		Raw:              &model.RawRecord{SourceURL: url, ItemTitle: title},
		DescriptionClean: description,
		PriceValue:       price,
		PriceUnknown:     price == nil,
	}
}

func TestDeduplicateCollapsesWhitespaceVariants(t *testing.T) {
	price := 120.0
	records := []model.NormalizedRecord{
		normRecord("https://example.com/a", "Antique Clock", "", &price),
		normRecord("https://example.com/b", "antique   clock", "", &price),
	}

	out := Deduplicate(records)
	if len(out) != 1 {
		t.Fatalf("Deduplicate returned %d records, want 1", len(out))
	}
	if out[0].Raw.SourceURL != "https://example.com/a" {
		t.Errorf("representative = %s, want first-seen record", out[0].Raw.SourceURL)
	}
	if !reflect.DeepEqual(out[0].DuplicateURLs, []string{"https://example.com/b"}) {
		t.Errorf("DuplicateURLs = %v, want the dropped record's URL", out[0].DuplicateURLs)
	}
}

func TestDeduplicateKeepsDistinctRecords(t *testing.T) {
	p1, p2 := 120.0, 130.0

	tests := []struct {
		name string
		a, b model.NormalizedRecord
	}{
		{
			"different titles",
			normRecord("u1", "Antique Clock", "", &p1),
			normRecord("u2", "Antique Mirror", "", &p1),
		},
		{
			"different prices",
			normRecord("u1", "Antique Clock", "", &p1),
			normRecord("u2", "Antique Clock", "", &p2),
		},
		{
			"known vs unknown price",
			normRecord("u1", "Antique Clock", "", &p1),
			normRecord("u2", "Antique Clock", "", nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Deduplicate([]model.NormalizedRecord{tt.a, tt.b})
			if len(out) != 2 {
				t.Errorf("Deduplicate returned %d records, want 2", len(out))
			}
		})
	}
}

// The representative rule: longest clean description wins, ties break to
// first-seen order.
func TestDeduplicateRepresentative(t *testing.T) {
	price := 75.0
	records := []model.NormalizedRecord{
		normRecord("u1", "Silver Teapot", "Short note.", &price),
		normRecord("u2", "Silver Teapot", "A much longer description of the very same teapot listing.", &price),
		normRecord("u3", "Silver Teapot", "Short note too.", &price),
	}

	out := Deduplicate(records)
	if len(out) != 1 {
		t.Fatalf("Deduplicate returned %d records, want 1", len(out))
	}
	rep := out[0]
	if rep.Raw.SourceURL != "u2" {
		t.Errorf("representative = %s, want u2 (longest description)", rep.Raw.SourceURL)
	}
	if !reflect.DeepEqual(rep.DuplicateURLs, []string{"u1", "u3"}) {
		t.Errorf("DuplicateURLs = %v, want [u1 u3]", rep.DuplicateURLs)
	}
}

func TestDeduplicateTieBreaksToFirstSeen(t *testing.T) {
	records := []model.NormalizedRecord{
		normRecord("u1", "Oak Coffer", "Same length here!", nil),
		normRecord("u2", "Oak Coffer", "Equal length too!", nil),
	}

	out := Deduplicate(records)
	if len(out) != 1 {
		t.Fatalf("Deduplicate returned %d records, want 1", len(out))
	}
	if out[0].Raw.SourceURL != "u1" {
		t.Errorf("representative = %s, want u1 (first seen)", out[0].Raw.SourceURL)
	}
}

func TestDeduplicatePreservesFirstAppearanceOrder(t *testing.T) {
	p := 10.0
	records := []model.NormalizedRecord{
		normRecord("u1", "Chair", "", &p),
		normRecord("u2", "Mirror", "", &p),
		normRecord("u3", "Chair", "", &p),
		normRecord("u4", "Lamp", "", &p),
	}

	out := Deduplicate(records)
	var titles []string
	for _, rec := range out {
		titles = append(titles, rec.Raw.ItemTitle)
	}
	want := []string{"Chair", "Mirror", "Lamp"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("output order = %v, want %v", titles, want)
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	if out := Deduplicate(nil); len(out) != 0 {
		t.Errorf("Deduplicate(nil) returned %d records", len(out))
	}
}
