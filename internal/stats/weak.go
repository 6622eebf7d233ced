package stats

import "sort"

// WeakestCharacters selects the n lowest-accuracy characters from ranks.
// Ties keep the order of ranks, so more practiced characters come first.
func WeakestCharacters(ranks []CharRank, n int) []CharRank {
	if len(ranks) == 0 || n <= 0 {
		return nil
	}
	candidates := make([]CharRank, len(ranks))
	copy(candidates, ranks)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Accuracy < candidates[j].Accuracy
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
