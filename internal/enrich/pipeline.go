package enrich

import (
	"errors"
	"fmt"

	"aaprj/internal/model"
)

var ErrNilRules = errors.New("pipeline: rules must not be nil")

// Pipeline sequences Normalizer -> Deduplicate -> Inferencer -> Score over
// a batch. It is the only component that drops records (via dedup) or
// rejects them (missing source URL); everything else degrades per field.
type Pipeline struct {
	normalizer *Normalizer
	inferencer *Inferencer
}

// Report carries per-batch statistics for observability.
type Report struct {
	Received          int
	Processed         int
	RejectedIndices   []int
	DuplicatesDropped int
	UnknownCounts     map[string]int
}

// New builds a pipeline over compiled rules. Rules problems are fatal here,
// before any record is processed.
func New(rules *Rules) (*Pipeline, error) {
	if rules == nil {
		return nil, ErrNilRules
	}
	if rules.categoryKeys == nil {
		if err := rules.Compile(); err != nil {
			return nil, fmt.Errorf("compiling rules: %w", err)
		}
	}
	return &Pipeline{
		normalizer: NewNormalizer(rules),
		inferencer: NewInferencer(rules),
	}, nil
}

// Run processes one batch. Records missing a source URL are rejected by
// index and the rest of the batch continues; a rejection is never an error.
func (p *Pipeline) Run(raws []model.RawRecord) ([]model.EnrichedRecord, Report) {
	report := Report{
		Received:      len(raws),
		UnknownCounts: make(map[string]int),
	}

	normalized := make([]model.NormalizedRecord, 0, len(raws))
	for i := range raws {
		if raws[i].SourceURL == "" {
			report.RejectedIndices = append(report.RejectedIndices, i)
			continue
		}
		normalized = append(normalized, p.normalizer.Normalize(&raws[i]))
	}

	survivors := Deduplicate(normalized)
	report.DuplicatesDropped = len(normalized) - len(survivors)

	enriched := make([]model.EnrichedRecord, 0, len(survivors))
	for _, rec := range survivors {
		out, support := p.inferencer.Infer(rec)
		out.ConfidenceScore = Score(support)
		for _, attr := range TrackedAttributes {
			if support[attr] == StrengthNone {
				report.UnknownCounts[attr]++
			}
		}
		enriched = append(enriched, out)
	}
	report.Processed = len(enriched)
	return enriched, report
}

// Normalizer exposes the batch normalizer for callers that stage their own
// concurrency; dedup must still run as a single global pass.
func (p *Pipeline) Normalizer() *Normalizer { return p.normalizer }

// Inferencer exposes the rule inferencer.
func (p *Pipeline) Inferencer() *Inferencer { return p.inferencer }
