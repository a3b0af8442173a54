package browse

import (
	"sort"
	"strings"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/antzucaro/matchr"
)

type sortStrategy func(list []*model.Channel)

var sortStrategies = map[model.SortType]sortStrategy{
	model.SortProvider:     nil, // backend order is the provider order
	model.SortAlphabetical: sortByName,
	model.SortLastWatched:  sortByLastWatched,
}

// sortPage applies the smart sort to one freshly fetched page. Sorting is
// suppressed right after a view mode transition and while a text query is
// active, since query relevance ordering must not be overridden.
func sortPage(list []*model.Channel, by model.SortType, viewStable, hasQuery bool) {
	if !viewStable || hasQuery {
		return
	}
	if strategy := sortStrategies[by]; strategy != nil {
		strategy(list)
	}
}

func sortByName(list []*model.Channel) {
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
}

func sortByLastWatched(list []*model.Channel) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].LastWatched.After(list[j].LastWatched)
	})
}

// maxGenreDistance allows spelling variations like "Sci-Fi" vs "SciFi"
const maxGenreDistance = 1

func matchesGenre(c *model.Channel, genre string) bool {
	if genre == "" {
		return true
	}
	want := strings.ToLower(strings.TrimSpace(genre))
	for _, g := range c.Genres {
		got := strings.ToLower(strings.TrimSpace(g))
		if got == want || strings.Contains(got, want) {
			return true
		}
		if matchr.DamerauLevenshtein(got, want) <= maxGenreDistance {
			return true
		}
	}
	return false
}
