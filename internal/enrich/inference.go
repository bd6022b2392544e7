package enrich

import (
	"regexp"
	"strconv"
	"strings"

	"aaprj/internal/model"
)

var (
	reCirca   = regexp.MustCompile(`(?i)\b(?:circa|c\.?)\s*(1[5-9]\d{2}|20[0-2]\d)\b`)
	reCentury = regexp.MustCompile(`(?i)\b(1[3-9]|2[01])(?:st|nd|rd|th) century\b`)
)

// Inferencer derives attributes from title + category + cleaned description
// through the ordered rule tables. Infer is pure and never fails: every
// unresolved attribute is "unknown" with no support entry.
type Inferencer struct {
	rules *Rules
}

func NewInferencer(rules *Rules) *Inferencer {
	return &Inferencer{rules: rules}
}

// Infer resolves the tracked attributes for one record and reports the
// evidence strength behind each resolution.
func (inf *Inferencer) Infer(rec model.NormalizedRecord) (model.EnrichedRecord, Support) {
	text := rec.Raw.ItemTitle + " " + rec.CategoryNorm + " " + rec.DescriptionClean
	support := Support{}

	out := model.EnrichedRecord{
		NormalizedRecord: rec,
		EraOrTimePeriod:  model.Unknown,
		RegionOfOrigin:   model.Unknown,
		FunctionalUse:    model.Unknown,
		Material:         model.Unknown,
		Style:            model.Unknown,
	}

	eraRule := matchFirst(inf.rules.Era, text)
	if eraRule != nil {
		out.EraOrTimePeriod = eraRule.Value
		support[AttrEra] = eraRule.strength
	}
	if rule := matchFirst(inf.rules.Region, text); rule != nil {
		out.RegionOfOrigin = rule.Value
		support[AttrRegion] = rule.strength
	}
	if rule := matchFirst(inf.rules.Use, text); rule != nil {
		out.FunctionalUse = rule.Value
		support[AttrUse] = rule.strength
	}
	if rule := matchFirst(inf.rules.Material, text); rule != nil {
		out.Material = rule.Value
		support[AttrMaterial] = rule.strength
	}
	if rule := matchFirst(inf.rules.Style, text); rule != nil {
		out.Style = rule.Value
		support[AttrStyle] = rule.strength
	}

	out.EstimatedYearRange, support[AttrYearRange] = inferYearRange(text, eraRule)
	if support[AttrYearRange] == StrengthNone {
		delete(support, AttrYearRange)
	}

	out.ShortSummary = inf.summarize(rec, out, len(support))
	return out, support
}

// matchFirst tries the table in declared order and returns the first rule
// whose pattern fires. Tables list the most specific patterns first, so
// priority is the declaration order.
func matchFirst(table []Rule, text string) *Rule {
	for i := range table {
		if table[i].re.MatchString(text) {
			return &table[i]
		}
	}
	return nil
}

// inferYearRange is layered: an explicit circa date wins at decade
// granularity, then a spelled-out century, then the window implied by the
// matched era rule. A single exact year is never produced.
func inferYearRange(text string, eraRule *Rule) (model.YearRange, Strength) {
	if m := reCirca.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		decade := year - year%10
		return model.YearRange{From: decade, To: decade + 9}, StrengthStrong
	}
	if m := reCentury.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		start := (n - 1) * 100
		return model.YearRange{From: start, To: start + 99}, StrengthMedium
	}
	if eraRule != nil && eraRule.YearFrom != 0 {
		return model.YearRange{From: eraRule.YearFrom, To: eraRule.YearTo}, eraRule.strength
	}
	return model.YearRange{}, StrengthNone
}

// summarize renders a short description from the resolved attributes. With
// fewer than two resolved attributes it falls back to title + category.
func (inf *Inferencer) summarize(rec model.NormalizedRecord, out model.EnrichedRecord, resolved int) string {
	var s string
	if resolved >= 2 {
		var parts []string
		if out.Style != model.Unknown {
			parts = append(parts, label(out.Style))
		}
		if out.Material != model.Unknown && out.Material != out.Style {
			parts = append(parts, label(out.Material))
		}
		parts = append(parts, label(out.CategoryNorm), "item")
		s = strings.Join(parts, " ")
		if out.EraOrTimePeriod != model.Unknown && out.EraOrTimePeriod != out.Style {
			s += ", " + label(out.EraOrTimePeriod)
		}
		if out.RegionOfOrigin != model.Unknown {
			s += ", from " + label(out.RegionOfOrigin)
		}
	} else {
		s = strings.TrimSpace(rec.Raw.ItemTitle)
		if s == "" {
			s = label(rec.CategoryNorm) + " item"
		} else {
			s += " (" + label(rec.CategoryNorm) + ")"
		}
	}
	return truncate(s, inf.rules.MaxSummary)
}

// label turns a vocabulary identifier back into display text.
func label(v string) string {
	return strings.ReplaceAll(v, "_", " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
