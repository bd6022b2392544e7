package enrich

// Score collapses a record's per-attribute evidence into one scalar in
// [0,1]: the mean strength weight over the fixed tracked-attribute set,
// with absent attributes counting as zero. It is total and deterministic;
// an all-unknown support map scores exactly 0.
func Score(support Support) float64 {
	var sum float64
	for _, attr := range TrackedAttributes {
		sum += support[attr].Weight()
	}
	score := sum / float64(len(TrackedAttributes))
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
