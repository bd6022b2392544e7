package enrich

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"

	"aaprj/internal/model"
)

var (
	reTag    = regexp.MustCompile(`<[^>]*>`)
	reNumber = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
)

// Normalizer canonicalizes categories, cleans text fields, and parses
// price strings. Normalize is pure and never fails: anything unparseable
// degrades to the unknown sentinels instead of erroring.
type Normalizer struct {
	rules *Rules
}

func NewNormalizer(rules *Rules) *Normalizer {
	return &Normalizer{rules: rules}
}

func (n *Normalizer) Normalize(raw *model.RawRecord) model.NormalizedRecord {
	price, unknown := n.parsePrice(raw.ListedPrice)
	return model.NormalizedRecord{
		Raw:              raw,
		CategoryNorm:     n.normalizeCategory(raw.Category),
		DescriptionClean: n.cleanDescription(raw.DescriptionRaw),
		PriceValue:       price,
		PriceUnknown:     unknown,
	}
}

// normalizeCategory maps a human-facing category label through the synonym
// table. Unmapped input becomes "other" rather than being dropped.
func (n *Normalizer) normalizeCategory(category string) string {
	key := collapseKey(category)
	if key == "" {
		return "other"
	}
	if canon, ok := n.rules.categoryKeys[key]; ok {
		return canon
	}
	return "other"
}

// cleanDescription strips HTML leftovers, decodes entities, and collapses
// whitespace. Descriptions that end up too short or are pure boilerplate
// are uninformative and replaced by the empty string.
func (n *Normalizer) cleanDescription(text string) string {
	text = html.UnescapeString(text)
	text = reTag.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")

	if len(text) < n.rules.MinDescription {
		return ""
	}
	lowered := strings.ToLower(text)
	for _, phrase := range n.rules.Boilerplate {
		if lowered == strings.ToLower(phrase) {
			return ""
		}
	}
	return text
}

// parsePrice turns a listed price string into a numeric value. POA markers
// and anything unparseable (including zero and negative amounts) yield
// (nil, true); the caller-visible invariant is unknown == (value == nil).
func (n *Normalizer) parsePrice(text string) (*float64, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return nil, true
	}
	for _, marker := range n.rules.POAMarkers {
		if strings.Contains(lowered, marker) {
			return nil, true
		}
	}

	loc := reNumber.FindStringIndex(lowered)
	if loc == nil {
		return nil, true
	}
	if loc[0] > 0 && lowered[loc[0]-1] == '-' {
		return nil, true
	}
	match := lowered[loc[0]:loc[1]]
	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil || value <= 0 || math.IsInf(value, 0) {
		return nil, true
	}
	return &value, false
}
