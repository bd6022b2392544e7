package enrich

import (
	"fmt"
	"strings"

	"aaprj/internal/model"
)

// poaKey is the similarity-key sentinel for records without a parsed price.
const poaKey = "poa"

// Deduplicate collapses records sharing a similarity key (collapsed
// lowercase title + price at minor-unit precision) down to one
// representative each. The representative is the group member with the
// longest clean description, ties breaking to the first seen; output keeps
// the first-appearance order of each group. Matching is exact:
// listings differing in title or price are never merged.
func Deduplicate(records []model.NormalizedRecord) []model.NormalizedRecord {
	out := make([]model.NormalizedRecord, 0, len(records))
	slot := make(map[string]int, len(records))

	for _, rec := range records {
		key := similarityKey(rec)
		i, seen := slot[key]
		if !seen {
			slot[key] = len(out)
			out = append(out, rec)
			continue
		}

		rep := out[i]
		if len(rec.DescriptionClean) > len(rep.DescriptionClean) {
			// The newcomer is more complete: it takes over the group's
			// slot and inherits the audit trail.
			rec.DuplicateURLs = append(rep.DuplicateURLs, rep.Raw.SourceURL)
			out[i] = rec
		} else {
			rep.DuplicateURLs = append(rep.DuplicateURLs, rec.Raw.SourceURL)
			out[i] = rep
		}
	}
	return out
}

func similarityKey(rec model.NormalizedRecord) string {
	return titleKey(rec.Raw.ItemTitle) + "|" + priceKey(rec.PriceValue)
}

func titleKey(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

func priceKey(value *float64) string {
	if value == nil {
		return poaKey
	}
	return fmt.Sprintf("%.2f", *value)
}
