package enrich

// DefaultRules returns the built-in rule tables, used when no RULES_PATH is
// configured. configs/rules.yaml ships the same tables in file form.
func DefaultRules() *Rules {
	r := &Rules{
		Categories: map[string]string{
			"Furniture":           "furniture",
			"Furniture & Seating": "furniture",
			"Ceramics":            "ceramics",
			"Pottery":             "ceramics",
			"Decorative Art":      "decorative_art",
			"Decorative Antiques": "decorative_art",
			"Silver":              "silver",
			"Silverware":          "silver",
			"Jewellery":           "jewellery",
			"Jewelry":             "jewellery",
			"Lighting":            "lighting",
			"Clocks & Watches":    "clocks",
			"Glass":               "glass",
		},
		POAMarkers:     []string{"poa", "price on application", "on request", "on application"},
		Boilerplate:    []string{"no description available", "description coming soon", "please contact us for details"},
		MinDescription: 20,
		MaxSummary:     160,

		Era: []Rule{
			{Pattern: `\bart deco\b`, Value: "art_deco", Strength: "strong", YearFrom: 1920, YearTo: 1939},
			{Pattern: `\bart nouveau\b`, Value: "art_nouveau", Strength: "strong", YearFrom: 1890, YearTo: 1910},
			{Pattern: `\bmid[- ]century\b`, Value: "mid_century", Strength: "strong", YearFrom: 1945, YearTo: 1969},
			{Pattern: `\bvictorian\b`, Value: "victorian", Strength: "strong", YearFrom: 1837, YearTo: 1901},
			{Pattern: `\bedwardian\b`, Value: "edwardian", Strength: "strong", YearFrom: 1901, YearTo: 1910},
			{Pattern: `\bgeorgian\b`, Value: "georgian", Strength: "strong", YearFrom: 1714, YearTo: 1830},
			{Pattern: `\bregency\b`, Value: "regency", Strength: "strong", YearFrom: 1811, YearTo: 1820},
			{Pattern: `\bjacobean\b`, Value: "jacobean", Strength: "strong", YearFrom: 1603, YearTo: 1625},
			{Pattern: `\b17th century\b`, Value: "17th_century", Strength: "medium", YearFrom: 1600, YearTo: 1699},
			{Pattern: `\b18th century\b`, Value: "18th_century", Strength: "medium", YearFrom: 1700, YearTo: 1799},
			{Pattern: `\b19th century\b`, Value: "19th_century", Strength: "medium", YearFrom: 1800, YearTo: 1899},
			{Pattern: `\b20th century\b`, Value: "20th_century", Strength: "medium", YearFrom: 1900, YearTo: 1999},
			{Pattern: `\bantique\b`, Value: "pre_1920", Strength: "weak", YearFrom: 1700, YearTo: 1919},
			{Pattern: `\bvintage\b`, Value: "20th_century", Strength: "weak", YearFrom: 1920, YearTo: 1979},
		},
		Region: []Rule{
			{Pattern: `\b(english|england|london)\b`, Value: "england", Strength: "medium"},
			{Pattern: `\b(scottish|scotland|edinburgh)\b`, Value: "scotland", Strength: "medium"},
			{Pattern: `\b(irish|ireland|dublin)\b`, Value: "ireland", Strength: "medium"},
			{Pattern: `\b(french|france|paris)\b`, Value: "france", Strength: "medium"},
			{Pattern: `\b(italian|italy|murano|venetian)\b`, Value: "italy", Strength: "medium"},
			{Pattern: `\b(german|germany|bavarian|meissen)\b`, Value: "germany", Strength: "medium"},
			{Pattern: `\b(dutch|holland|delft)\b`, Value: "netherlands", Strength: "medium"},
			{Pattern: `\b(chinese|china|canton|qing|ming)\b`, Value: "china", Strength: "medium"},
			{Pattern: `\b(japanese|japan|meiji|satsuma|imari)\b`, Value: "japan", Strength: "medium"},
			{Pattern: `\b(american|america|usa)\b`, Value: "united_states", Strength: "medium"},
			{Pattern: `\b(scandinavian|danish|swedish|norwegian)\b`, Value: "scandinavia", Strength: "medium"},
			{Pattern: `\b(british|britain|uk)\b`, Value: "britain", Strength: "weak"},
			{Pattern: `\b(european|continental)\b`, Value: "europe", Strength: "weak"},
		},
		Use: []Rule{
			{Pattern: `\bwriting (desk|table|slope)\b`, Value: "writing", Strength: "strong"},
			{Pattern: `\b(desk|bureau|davenport)\b`, Value: "writing", Strength: "medium"},
			{Pattern: `\b(chair|armchair|sofa|settee|stool|bench|chaise)\b`, Value: "seating", Strength: "strong"},
			{Pattern: `\b(chest of drawers|wardrobe|cabinet|cupboard|dresser|bookcase|chest|coffer|trunk)\b`, Value: "storage", Strength: "strong"},
			{Pattern: `\b(mirror|overmantle)\b`, Value: "mirror", Strength: "strong"},
			{Pattern: `\b(chandelier|lamp|lantern|sconce|candelabra|candlestick)\b`, Value: "lighting", Strength: "strong"},
			{Pattern: `\b(clock|barometer|watch)\b`, Value: "timekeeping", Strength: "strong"},
			{Pattern: `\b(ring|necklace|brooch|bracelet|pendant|earrings)\b`, Value: "adornment", Strength: "strong"},
			{Pattern: `\b(teapot|tea set|tureen|decanter|jug|tankard|cutlery|flatware|salver|tray|bowl|plate|dish)\b`, Value: "tableware", Strength: "medium"},
			{Pattern: `\b(dining table|side table|console table|table)\b`, Value: "surface", Strength: "medium"},
			{Pattern: `\b(vase|urn|figurine|figure|bust|sculpture|ornament)\b`, Value: "decorative", Strength: "medium"},
			{Pattern: `\b(rug|carpet|tapestry)\b`, Value: "floor_covering", Strength: "strong"},
		},
		Material: []Rule{
			{Pattern: `\bmahogany\b`, Value: "mahogany", Strength: "strong"},
			{Pattern: `\boak\b`, Value: "oak", Strength: "strong"},
			{Pattern: `\bwalnut\b`, Value: "walnut", Strength: "strong"},
			{Pattern: `\brosewood\b`, Value: "rosewood", Strength: "strong"},
			{Pattern: `\bsatinwood\b`, Value: "satinwood", Strength: "strong"},
			{Pattern: `\b(pine|elm|beech|fruitwood)\b`, Value: "softwood", Strength: "medium"},
			{Pattern: `\bsterling silver\b`, Value: "sterling_silver", Strength: "strong"},
			{Pattern: `\bsilver plate[d]?\b`, Value: "silver_plate", Strength: "strong"},
			{Pattern: `\bsilver\b`, Value: "silver", Strength: "medium"},
			{Pattern: `\b(gold|gilt|ormolu|gilded)\b`, Value: "gilt_metal", Strength: "medium"},
			{Pattern: `\bbronze\b`, Value: "bronze", Strength: "strong"},
			{Pattern: `\bbrass\b`, Value: "brass", Strength: "strong"},
			{Pattern: `\bcopper\b`, Value: "copper", Strength: "strong"},
			{Pattern: `\bpewter\b`, Value: "pewter", Strength: "strong"},
			{Pattern: `\bporcelain\b`, Value: "porcelain", Strength: "strong"},
			{Pattern: `\b(earthenware|stoneware|terracotta|pottery)\b`, Value: "earthenware", Strength: "medium"},
			{Pattern: `\b(crystal|cut glass|glass)\b`, Value: "glass", Strength: "medium"},
			{Pattern: `\bmarble\b`, Value: "marble", Strength: "strong"},
			{Pattern: `\b(leather|hide)\b`, Value: "leather", Strength: "medium"},
			{Pattern: `\b(ivory|bone)\b`, Value: "bone", Strength: "medium"},
			{Pattern: `\b(wool|silk|velvet|linen)\b`, Value: "textile", Strength: "medium"},
		},
		Style: []Rule{
			{Pattern: `\barts (and|&) crafts\b`, Value: "arts_and_crafts", Strength: "strong"},
			{Pattern: `\bart deco\b`, Value: "art_deco", Strength: "strong"},
			{Pattern: `\bart nouveau\b`, Value: "art_nouveau", Strength: "strong"},
			{Pattern: `\bchippendale\b`, Value: "chippendale", Strength: "strong"},
			{Pattern: `\bsheraton\b`, Value: "sheraton", Strength: "strong"},
			{Pattern: `\bhepplewhite\b`, Value: "hepplewhite", Strength: "strong"},
			{Pattern: `\bqueen anne\b`, Value: "queen_anne", Strength: "strong"},
			{Pattern: `\b(rococo|louis xv)\b`, Value: "rococo", Strength: "strong"},
			{Pattern: `\b(baroque|louis xiv)\b`, Value: "baroque", Strength: "strong"},
			{Pattern: `\b(neoclassical|louis xvi|empire)\b`, Value: "neoclassical", Strength: "medium"},
			{Pattern: `\bgothic\b`, Value: "gothic_revival", Strength: "medium"},
			{Pattern: `\baesthetic movement\b`, Value: "aesthetic_movement", Strength: "strong"},
			{Pattern: `\bvictorian\b`, Value: "victorian", Strength: "weak"},
			{Pattern: `\bgeorgian\b`, Value: "georgian", Strength: "weak"},
		},
	}
	if err := r.Compile(); err != nil {
		// The built-in tables are covered by tests; a compile failure here
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return r
}
