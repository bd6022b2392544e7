package enrich

import (
	"reflect"
	"testing"

	"aaprj/internal/model"
)

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := New(DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPipelineRun(t *testing.T) {
	p := testPipeline(t)

	raws := []model.RawRecord{
		{
			SourceURL:   "https://example.com/desk",
			ItemTitle:   "Victorian Mahogany Writing Desk",
			Category:    "Furniture & Seating",
			ListedPrice: "POA",
		},
		{
			SourceURL:   "https://example.com/clock-1",
			ItemTitle:   "Antique Clock",
			Category:    "Clocks & Watches",
			ListedPrice: "£120",
		},
		{
			SourceURL:   "https://example.com/clock-2",
			ItemTitle:   "antique   clock",
			Category:    "Clocks & Watches",
			ListedPrice: "120.00",
		},
		{
			// No source URL: rejected, batch continues.
			ItemTitle: "Orphan record",
		},
		{
			SourceURL: "https://example.com/mystery",
			ItemTitle: "Mystery object",
			Category:  "Oddities",
		},
	}

	out, report := p.Run(raws)

	if report.Received != 5 {
		t.Errorf("Received = %d, want 5", report.Received)
	}
	if !reflect.DeepEqual(report.RejectedIndices, []int{3}) {
		t.Errorf("RejectedIndices = %v, want [3]", report.RejectedIndices)
	}
	if report.DuplicatesDropped != 1 {
		t.Errorf("DuplicatesDropped = %d, want 1", report.DuplicatesDropped)
	}
	if len(out) != 3 || report.Processed != 3 {
		t.Fatalf("got %d records (Processed=%d), want 3", len(out), report.Processed)
	}

	desk := out[0]
	if !desk.PriceUnknown || desk.PriceValue != nil {
		t.Errorf("POA desk: PriceUnknown=%v PriceValue=%v", desk.PriceUnknown, desk.PriceValue)
	}
	if desk.EraOrTimePeriod != "victorian" || desk.Material != "mahogany" {
		t.Errorf("desk enrichment = %q / %q", desk.EraOrTimePeriod, desk.Material)
	}
	if desk.ConfidenceScore <= 0 {
		t.Errorf("desk confidence = %v, want > 0", desk.ConfidenceScore)
	}

	clock := out[1]
	if clock.Raw.SourceURL != "https://example.com/clock-1" {
		t.Errorf("clock representative = %s, want first-seen", clock.Raw.SourceURL)
	}
	if !reflect.DeepEqual(clock.DuplicateURLs, []string{"https://example.com/clock-2"}) {
		t.Errorf("clock DuplicateURLs = %v", clock.DuplicateURLs)
	}

	mystery := out[2]
	if mystery.ConfidenceScore != 0 {
		t.Errorf("mystery confidence = %v, want exactly 0", mystery.ConfidenceScore)
	}
	if mystery.CategoryNorm != "other" {
		t.Errorf("mystery category = %q, want other", mystery.CategoryNorm)
	}

	if report.UnknownCounts[AttrRegion] != 3 {
		t.Errorf("UnknownCounts[region] = %d, want 3", report.UnknownCounts[AttrRegion])
	}
}

func TestPipelineRejectsOnlyMalformed(t *testing.T) {
	p := testPipeline(t)

	out, report := p.Run([]model.RawRecord{
		{ItemTitle: "no url"},
		{ItemTitle: "also no url"},
	})
	if len(out) != 0 {
		t.Errorf("got %d records, want 0", len(out))
	}
	if !reflect.DeepEqual(report.RejectedIndices, []int{0, 1}) {
		t.Errorf("RejectedIndices = %v, want [0 1]", report.RejectedIndices)
	}
}

func TestPipelineEmptyBatch(t *testing.T) {
	p := testPipeline(t)

	out, report := p.Run(nil)
	if len(out) != 0 || report.Processed != 0 || len(report.RejectedIndices) != 0 {
		t.Errorf("empty batch produced out=%d report=%+v", len(out), report)
	}
}

func TestNewRejectsNilRules(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) should fail")
	}
}

// Raw inputs must survive the pipeline untouched.
func TestPipelineDoesNotMutateRawRecords(t *testing.T) {
	p := testPipeline(t)

	raws := []model.RawRecord{{
		SourceURL:   "https://example.com/desk",
		ItemTitle:   "Victorian   Mahogany  Desk",
		Category:    "Furniture & Seating",
		ListedPrice: "£1,250",
	}}
	before := raws[0]

	p.Run(raws)

	if !reflect.DeepEqual(before, raws[0]) {
		t.Errorf("raw record mutated: %+v -> %+v", before, raws[0])
	}
}
