package db

import (
	"testing"

	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func findClause(t *testing.T, filter bson.D, key string) (bson.E, bool) {
	t.Helper()
	for _, e := range filter {
		if e.Key == key {
			return e, true
		}
	}
	return bson.E{}, false
}

func TestGetFilterViewModes(t *testing.T) {
	type testCase struct {
		name    string
		prepare func(f *filters.State)
		key     string
		value   interface{}
	}

	testCases := []testCase{
		{
			name:    "favorites",
			prepare: func(f *filters.State) { f.SwitchViewMode(model.ViewModeFavorites) },
			key:     "favorite",
			value:   true,
		},
		{
			name:    "hidden",
			prepare: func(f *filters.State) { f.SwitchViewMode(model.ViewModeHidden) },
			key:     "hidden",
			value:   true,
		},
		{
			name:    "categories select groups",
			prepare: func(f *filters.State) { f.SwitchViewMode(model.ViewModeCategories) },
			key:     "mediatype",
			value:   int(model.MediaTypeGroup),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := filters.New([]int64{1}, model.SortProvider)
			tc.prepare(f)

			clause, ok := findClause(t, getFilter(f), tc.key)
			require.True(t, ok)
			assert.Equal(t, tc.value, clause.Value)
		})
	}
}

func TestGetFilterHidesHiddenDuringBrowse(t *testing.T) {
	f := filters.New([]int64{1}, model.SortProvider)

	clause, ok := findClause(t, getFilter(f), "hidden")
	require.True(t, ok)
	assert.Equal(t, false, clause.Value)

	f.ShowHidden = true
	_, ok = findClause(t, getFilter(f), "hidden")
	assert.False(t, ok)
}

func TestGetFilterScopeOverridesViewMode(t *testing.T) {
	f := filters.New([]int64{1}, model.SortProvider)
	f.SwitchViewMode(model.ViewModeCategories)
	id := int64(42)
	f.SetGroup(&id)

	filter := getFilter(f)
	clause, ok := findClause(t, filter, "groupid")
	require.True(t, ok)
	assert.EqualValues(t, 42, clause.Value)

	_, ok = findClause(t, filter, "mediatype")
	assert.False(t, ok)
}

func TestGetFilterSources(t *testing.T) {
	f := filters.New([]int64{1, 3}, model.SortProvider)

	clause, ok := findClause(t, getFilter(f), "sourceid")
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "$in", Value: []int64{1, 3}}}, clause.Value)
}

func TestGetQueryKeywords(t *testing.T) {
	plain := getQuery("some news", false)
	assert.Equal(t, "name", plain.Key)

	tokenized := getQuery("some news", true)
	require.Equal(t, "$and", tokenized.Key)
	assert.Len(t, tokenized.Value, 2)
}

func TestRegexEscape(t *testing.T) {
	assert.Equal(t, `sport \(hd\)`, regexEscape("sport (hd)"))
	assert.Equal(t, `a\+b`, regexEscape("a+b"))
	assert.Equal(t, "plain", regexEscape("plain"))
}

func TestGetSort(t *testing.T) {
	f := filters.New(nil, model.SortAlphabetical)
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, getSort(f))

	f.SetSort(model.SortLastWatched)
	assert.Equal(t, bson.D{{Key: "lastwatched", Value: -1}}, getSort(f))

	f.SetSort(model.SortProvider)
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, getSort(f))

	// history is always most recent first
	f.SetSort(model.SortAlphabetical)
	f.SwitchViewMode(model.ViewModeHistory)
	assert.Equal(t, bson.D{{Key: "lastwatched", Value: -1}}, getSort(f))
}
