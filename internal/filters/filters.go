package filters

import (
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
)

// State holds the active query parameters of a browse session. It is pure
// state: every mutation goes through the methods below and none of them
// performs remote calls. Dependent reloads are the caller's responsibility,
// so a failed reload cannot corrupt the filter state.
type State struct {
	ViewMode   model.ViewMode
	MediaTypes map[model.MediaType]struct{}
	SourceIDs  []int64
	Query      string
	Sort       model.SortType
	Page       int

	// Drill scopes, pairwise exclusive: setting one clears the other two.
	GroupID  *int64
	SeriesID *int64
	SeasonID *int64

	// ShowHidden is false during normal browse and true only for
	// management views.
	ShowHidden  bool
	UseKeywords bool

	// Optional narrowing predicates.
	Genre     string
	MinRating float32

	// loadedViewMode is the view mode the last completed load ran under.
	// The loader suppresses smart sorting across a view mode transition.
	loadedViewMode model.ViewMode
}

// New builds the initial state: all-channels view, livestreams enabled,
// scoped to the given enabled sources.
func New(sourceIDs []int64, sort model.SortType) *State {
	return &State{
		ViewMode:   model.ViewModeAll,
		MediaTypes: map[model.MediaType]struct{}{model.MediaTypeLivestream: {}},
		SourceIDs:  sourceIDs,
		Sort:       sort,
		Page:       1,
	}
}

func (s *State) SwitchViewMode(mode model.ViewMode) {
	s.ViewMode = mode
	s.Page = 1
}

func (s *State) SetQuery(text string) {
	s.Query = text
	s.Page = 1
}

func (s *State) ClearQuery() {
	s.SetQuery("")
}

func (s *State) ToggleMediaType(t model.MediaType) {
	if _, ok := s.MediaTypes[t]; ok {
		delete(s.MediaTypes, t)
	} else {
		s.MediaTypes[t] = struct{}{}
	}
	s.Page = 1
}

func (s *State) SetMediaTypes(types []model.MediaType) {
	s.MediaTypes = make(map[model.MediaType]struct{}, len(types))
	for _, t := range types {
		s.MediaTypes[t] = struct{}{}
	}
	s.Page = 1
}

func (s *State) HasMediaType(t model.MediaType) bool {
	_, ok := s.MediaTypes[t]
	return ok
}

// MediaTypeList returns the enabled media types in their canonical order.
func (s *State) MediaTypeList() []model.MediaType {
	list := make([]model.MediaType, 0, len(s.MediaTypes))
	for t := model.MediaTypeLivestream; t <= model.MediaTypeSeason; t++ {
		if _, ok := s.MediaTypes[t]; ok {
			list = append(list, t)
		}
	}
	return list
}

// SetGroup scopes browsing to a single category. Passing nil leaves the
// category scope.
func (s *State) SetGroup(id *int64) {
	s.GroupID = id
	s.SeriesID = nil
	s.SeasonID = nil
	s.Page = 1
}

// SetSeries scopes browsing to a single series. The series drill also narrows
// SourceIDs to the originating source; the caller passes the full enabled set
// back when clearing the scope.
func (s *State) SetSeries(id *int64, sourceIDs []int64) {
	s.SeriesID = id
	s.GroupID = nil
	s.SeasonID = nil
	s.SourceIDs = sourceIDs
	s.Page = 1
}

// SetSeason scopes browsing to a single season. The season id alone
// identifies the drill target, so the parent series scope is cleared here and
// re-applied from the navigation stack when the season is popped.
func (s *State) SetSeason(id *int64) {
	s.SeasonID = id
	s.GroupID = nil
	s.SeriesID = nil
	s.Page = 1
}

func (s *State) SetSort(sort model.SortType) {
	s.Sort = sort
	s.Page = 1
}

func (s *State) SetGenre(genre string) {
	s.Genre = genre
	s.Page = 1
}

func (s *State) SetMinRating(rating float32) {
	s.MinRating = rating
	s.Page = 1
}

func (s *State) ToggleKeywords() {
	s.UseKeywords = !s.UseKeywords
	s.Page = 1
}

// ViewStable reports whether the current view mode matches the one the last
// load completed under.
func (s *State) ViewStable() bool {
	return s.ViewMode == s.loadedViewMode
}

// MarkViewLoaded records the current view mode as loaded.
func (s *State) MarkViewLoaded() {
	s.loadedViewMode = s.ViewMode
}

// Clone returns an independent copy, used to stage per-fetch mutations
// without touching the canonical state.
func (s *State) Clone() *State {
	c := *s
	c.MediaTypes = make(map[model.MediaType]struct{}, len(s.MediaTypes))
	for t := range s.MediaTypes {
		c.MediaTypes[t] = struct{}{}
	}
	c.SourceIDs = append([]int64(nil), s.SourceIDs...)
	if s.GroupID != nil {
		id := *s.GroupID
		c.GroupID = &id
	}
	if s.SeriesID != nil {
		id := *s.SeriesID
		c.SeriesID = &id
	}
	if s.SeasonID != nil {
		id := *s.SeasonID
		c.SeasonID = &id
	}
	return &c
}
