package match

import (
	"sort"
)

// MinSuggestionScore is the similarity below which a name is not suggested.
const MinSuggestionScore = 0.5

// Suggest returns up to limit candidates most similar to name, best first.
// Ties keep candidate order, so results are deterministic.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	seen := make(map[string]bool, len(candidates))

	for _, c := range candidates {
		if seen[c] {
			continue
		}

		seen[c] = true

		if s := Similarity(name, c); s >= MinSuggestionScore {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}
