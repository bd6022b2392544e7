// Package enrich implements the normalization, deduplication, and
// attribute-enrichment engine. It is a pure in-memory batch transform:
// no network, no files, no per-record errors. Data quality problems
// degrade to the "unknown" sentinel instead of failing.
package enrich

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Attribute names tracked by the inferencer and the confidence scorer.
const (
	AttrEra       = "era_or_time_period"
	AttrYearRange = "estimated_year_range"
	AttrRegion    = "region_of_origin"
	AttrUse       = "functional_use"
	AttrMaterial  = "material"
	AttrStyle     = "style"
)

// TrackedAttributes is the fixed attribute set the confidence score averages
// over. Order matters only for reporting.
var TrackedAttributes = []string{
	AttrEra,
	AttrYearRange,
	AttrRegion,
	AttrUse,
	AttrMaterial,
	AttrStyle,
}

// Strength is the coarse evidence tier attached to a single rule match,
// distinct from the final aggregate confidence score.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

// Weight maps a strength tier to its contribution to the confidence score.
func (s Strength) Weight() float64 {
	switch s {
	case StrengthWeak:
		return 0.3
	case StrengthMedium:
		return 0.6
	case StrengthStrong:
		return 1.0
	default:
		return 0
	}
}

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return "none"
	}
}

func parseStrength(s string) (Strength, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weak":
		return StrengthWeak, nil
	case "medium":
		return StrengthMedium, nil
	case "strong":
		return StrengthStrong, nil
	}
	return StrengthNone, fmt.Errorf("%w: %q", ErrBadStrength, s)
}

// Support maps attribute name to the strength of the rule match that
// resolved it. Unresolved attributes are simply absent.
type Support map[string]Strength

// Configuration validation errors. Any of these is fatal at startup,
// before a single record is processed.
var (
	ErrNoCategories = errors.New("rules: category table is empty")
	ErrBadStrength  = errors.New("rules: strength must be weak, medium or strong")
	ErrBadPattern   = errors.New("rules: invalid pattern")
	ErrEmptyValue   = errors.New("rules: rule value is empty")
	ErrBadYearRange = errors.New("rules: year_from must not exceed year_to")
)

// Rule is one declarative matcher: a pattern tried against the combined
// title+category+description text, the value it infers, and the evidence
// tier of the match. Era rules may carry the year window the era implies.
type Rule struct {
	Pattern  string `yaml:"pattern"`
	Value    string `yaml:"value"`
	Strength string `yaml:"strength"`
	YearFrom int    `yaml:"year_from,omitempty"`
	YearTo   int    `yaml:"year_to,omitempty"`

	re       *regexp.Regexp
	strength Strength
}

// Rules is the full external configuration of the engine: the category
// canon, POA markers, boilerplate phrases, and the ordered matcher table
// per attribute. Within a table the first matching rule wins, so rules
// must be listed most specific first.
type Rules struct {
	Categories     map[string]string `yaml:"categories"`
	POAMarkers     []string          `yaml:"poa_markers"`
	Boilerplate    []string          `yaml:"boilerplate"`
	MinDescription int               `yaml:"min_description"`
	MaxSummary     int               `yaml:"max_summary"`

	Era      []Rule `yaml:"era"`
	Region   []Rule `yaml:"region"`
	Use      []Rule `yaml:"functional_use"`
	Material []Rule `yaml:"material"`
	Style    []Rule `yaml:"style"`

	// categoryKeys maps collapsed lookup keys (and canonical values back to
	// themselves, so normalization is idempotent) to canonical categories.
	categoryKeys map[string]string
}

// LoadRules reads and compiles a YAML rule file.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	if err := r.Compile(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Compile validates the configuration and pre-compiles every pattern.
// It must be called before the rules are handed to the engine.
func (r *Rules) Compile() error {
	if len(r.Categories) == 0 {
		return ErrNoCategories
	}
	if r.MinDescription <= 0 {
		r.MinDescription = 20
	}
	if r.MaxSummary <= 0 {
		r.MaxSummary = 160
	}

	r.categoryKeys = make(map[string]string, len(r.Categories)*2)
	for label, canon := range r.Categories {
		r.categoryKeys[collapseKey(label)] = canon
		r.categoryKeys[collapseKey(canon)] = canon
	}

	for _, table := range [][]Rule{r.Era, r.Region, r.Use, r.Material, r.Style} {
		for i := range table {
			if err := table[i].compile(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (rule *Rule) compile() error {
	if strings.TrimSpace(rule.Value) == "" {
		return fmt.Errorf("%w (pattern %q)", ErrEmptyValue, rule.Pattern)
	}
	re, err := regexp.Compile("(?i)" + rule.Pattern)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrBadPattern, rule.Pattern, err)
	}
	rule.re = re
	st, err := parseStrength(rule.Strength)
	if err != nil {
		return fmt.Errorf("%w (pattern %q)", err, rule.Pattern)
	}
	rule.strength = st
	if rule.YearFrom > rule.YearTo {
		return fmt.Errorf("%w (pattern %q)", ErrBadYearRange, rule.Pattern)
	}
	return nil
}

// Vocabulary returns the closed value set for an attribute: every lookup
// outside it fails closed to "unknown".
func (r *Rules) Vocabulary(attr string) map[string]bool {
	var table []Rule
	switch attr {
	case AttrEra:
		table = r.Era
	case AttrRegion:
		table = r.Region
	case AttrUse:
		table = r.Use
	case AttrMaterial:
		table = r.Material
	case AttrStyle:
		table = r.Style
	default:
		return nil
	}
	vocab := make(map[string]bool, len(table))
	for _, rule := range table {
		vocab[rule.Value] = true
	}
	return vocab
}

// collapseKey lowercases and strips everything but letters and digits,
// collapsing the remainder into single-space-separated words. "Furniture &
// Seating" and "furniture_seating" both collapse to "furniture seating".
func collapseKey(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			b.WriteRune(c)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
