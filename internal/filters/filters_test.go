package filters

import (
	"testing"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scopeCount(s *State) int {
	count := 0
	if s.GroupID != nil {
		count++
	}
	if s.SeriesID != nil {
		count++
	}
	if s.SeasonID != nil {
		count++
	}
	return count
}

func TestScopeExclusivity(t *testing.T) {
	group := int64(10)
	series := int64(20)
	season := int64(30)

	s := New([]int64{1, 2}, model.SortProvider)

	s.SetGroup(&group)
	assert.Equal(t, 1, scopeCount(s))
	require.NotNil(t, s.GroupID)

	s.SetSeries(&series, []int64{1})
	assert.Equal(t, 1, scopeCount(s))
	require.NotNil(t, s.SeriesID)
	assert.Equal(t, []int64{1}, s.SourceIDs)

	s.SetSeason(&season)
	assert.Equal(t, 1, scopeCount(s))
	require.NotNil(t, s.SeasonID)

	s.SetGroup(&group)
	assert.Equal(t, 1, scopeCount(s))
	assert.Nil(t, s.SeasonID)
}

func TestSetSeriesRestoresSources(t *testing.T) {
	series := int64(20)
	all := []int64{1, 2, 3}

	s := New(all, model.SortProvider)
	s.SetSeries(&series, []int64{2})
	assert.Equal(t, []int64{2}, s.SourceIDs)

	s.SetSeries(nil, all)
	assert.Nil(t, s.SeriesID)
	assert.Equal(t, all, s.SourceIDs)
}

func TestTransitionsResetPage(t *testing.T) {
	s := New([]int64{1}, model.SortProvider)

	mutations := []func(){
		func() { s.SwitchViewMode(model.ViewModeFavorites) },
		func() { s.SetQuery("news") },
		func() { s.ClearQuery() },
		func() { s.ToggleMediaType(model.MediaTypeMovie) },
		func() { s.SetGenre("sports") },
		func() { s.SetMinRating(7.5) },
		func() { s.ToggleKeywords() },
	}

	for _, mutate := range mutations {
		s.Page = 5
		mutate()
		assert.Equal(t, 1, s.Page)
	}
}

func TestToggleMediaType(t *testing.T) {
	s := New([]int64{1}, model.SortProvider)
	assert.True(t, s.HasMediaType(model.MediaTypeLivestream))

	s.ToggleMediaType(model.MediaTypeLivestream)
	assert.False(t, s.HasMediaType(model.MediaTypeLivestream))

	s.ToggleMediaType(model.MediaTypeMovie)
	s.ToggleMediaType(model.MediaTypeSerie)
	assert.Equal(t, []model.MediaType{model.MediaTypeMovie, model.MediaTypeSerie}, s.MediaTypeList())
}

func TestCloneIsIndependent(t *testing.T) {
	group := int64(1)
	s := New([]int64{1, 2}, model.SortProvider)
	s.SetGroup(&group)

	c := s.Clone()
	c.ToggleMediaType(model.MediaTypeMovie)
	*c.GroupID = 99
	c.SourceIDs[0] = 42

	assert.False(t, s.HasMediaType(model.MediaTypeMovie))
	assert.Equal(t, int64(1), *s.GroupID)
	assert.Equal(t, int64(1), s.SourceIDs[0])
}

func TestViewStability(t *testing.T) {
	s := New([]int64{1}, model.SortProvider)
	s.MarkViewLoaded()
	assert.True(t, s.ViewStable())

	s.SwitchViewMode(model.ViewModeCategories)
	assert.False(t, s.ViewStable())

	s.MarkViewLoaded()
	assert.True(t, s.ViewStable())
}
