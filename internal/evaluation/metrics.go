package evaluation

import "strings"

// RecallAtK is the fraction of relevant names found in the top-K retrieved
// names. Names compare case-insensitively. Returns 0 if relevant is empty.
func RecallAtK(relevant, retrieved []string, k int) float64 {
	if len(relevant) == 0 {
		return 0.0
	}
	want := nameSet(relevant)

	found := 0
	for _, r := range topK(retrieved, k) {
		key := normalize(r)
		if _, ok := want[key]; ok {
			found++
			delete(want, key)
		}
	}
	return float64(found) / float64(len(relevant))
}

// MRRAtK is the reciprocal rank of the first relevant name within the top-K
// retrieved names, or 0 when none appears.
func MRRAtK(relevant, retrieved []string, k int) float64 {
	if len(relevant) == 0 || len(retrieved) == 0 {
		return 0.0
	}
	want := nameSet(relevant)

	for i, r := range topK(retrieved, k) {
		if _, ok := want[normalize(r)]; ok {
			return 1.0 / float64(i+1)
		}
	}
	return 0.0
}

func topK(retrieved []string, k int) []string {
	if k >= 0 && k < len(retrieved) {
		return retrieved[:k]
	}
	return retrieved
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[normalize(n)] = struct{}{}
	}
	return set
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
