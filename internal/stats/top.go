package stats

import (
	"sort"

	"github.com/verte-zerg/kanaflash/internal/model"
)

// CharRank is one studied character with its counters.
type CharRank struct {
	Kana     model.Kana
	Progress model.KanaProgress
	Total    int
	Accuracy int
}

// RankCharacters returns the studied characters of dataset ordered by
// answer count, highest first. Characters never answered are left out and
// equal counts keep dataset order.
func RankCharacters(dataset []model.Kana, progress model.ProgressMap) []CharRank {
	ranks := make([]CharRank, 0, len(progress))
	for _, k := range dataset {
		p := progress[k.ID]
		total := p.Total()
		if total == 0 {
			continue
		}
		ranks = append(ranks, CharRank{
			Kana:     k,
			Progress: p,
			Total:    total,
			Accuracy: Accuracy(p.CorrectCount, total),
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Total > ranks[j].Total
	})
	return ranks
}

// TopCharacters returns at most n ranks. n <= 0 returns all.
func TopCharacters(ranks []CharRank, n int) []CharRank {
	if n <= 0 || n >= len(ranks) {
		return ranks
	}
	return ranks[:n]
}
