package model

import (
	"encoding/json"
	"fmt"
)

// Unknown is the sentinel for every enrichment attribute that could not be
// resolved. Output fields are always a vocabulary value or this literal.
const Unknown = "unknown"

// RawRecord is one listing exactly as collected. It is never mutated after
// collection; SourceURL is the unique key and the only required field.
type RawRecord struct {
	ID             string
	SourceURL      string
	ItemTitle      string
	Category       string
	DescriptionRaw string
	Images         []string
	ListedPrice    string
	Currency       string
	SellerLocation string
}

// NormalizedRecord wraps a RawRecord with cleaned fields.
// Invariant: PriceUnknown == (PriceValue == nil).
type NormalizedRecord struct {
	Raw              *RawRecord
	CategoryNorm     string
	DescriptionClean string
	PriceValue       *float64
	PriceUnknown     bool

	// DuplicateURLs holds the source URLs of listings collapsed into this
	// record during deduplication.
	DuplicateURLs []string
}

// EnrichedRecord is the final pipeline output for one surviving listing.
type EnrichedRecord struct {
	NormalizedRecord

	EraOrTimePeriod    string
	EstimatedYearRange YearRange
	RegionOfOrigin     string
	FunctionalUse      string
	Material           string
	Style              string
	ShortSummary       string
	ConfidenceScore    float64
}

// YearRange is an estimated production window at decade or century
// granularity. The zero value means unknown.
type YearRange struct {
	From int
	To   int
}

func (r YearRange) IsZero() bool {
	return r.From == 0 && r.To == 0
}

func (r YearRange) String() string {
	if r.IsZero() {
		return Unknown
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// MarshalJSON emits [from, to] for a known range and "unknown" otherwise.
func (r YearRange) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return json.Marshal(Unknown)
	}
	return json.Marshal([2]int{r.From, r.To})
}

func (r *YearRange) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err == nil {
		r.From, r.To = pair[0], pair[1]
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = YearRange{}
	return nil
}
