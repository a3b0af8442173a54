package session

import (
	"context"
	"errors"
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/browse"
	"github.com/RacoonMediaServer/rms-catalog/internal/cluster"
	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/RacoonMediaServer/rms-catalog/internal/navigation"
	"github.com/RacoonMediaServer/rms-catalog/internal/selection"
)

// ErrNotDrillable is returned when drill-in is attempted on a plain item.
var ErrNotDrillable = errors.New("item is not drillable")

// Session is one interactive browse of the catalog. It owns the filter
// state, the loader, the drill path and the selection, and keeps them
// consistent across transitions. Sessions are not safe for concurrent use:
// the manager serializes access per session id.
type Session struct {
	ID string

	Filters    *filters.State
	Loader     *browse.Loader
	Nav        *navigation.Stack
	Focus      *navigation.Controller
	Selection  *selection.Coordinator
	Categories *cluster.Manager

	catalog Catalog

	// sources is the full enabled-source id set, restored when a series
	// drill scope is left.
	sources []int64

	startup StartupState
	stale   bool
}

// Load fetches a page for the current filter state. A stale session always
// reloads from the first page.
func (s *Session) Load(ctx context.Context, more bool) (*browse.Result, error) {
	if s.stale {
		more = false
		s.stale = false
	}
	return s.Loader.Load(ctx, s.Filters, more)
}

func (s *Session) LoadMore(ctx context.Context) (*browse.Result, error) {
	return s.Loader.LoadMore(ctx, s.Filters)
}

// DrillIn narrows browsing to the children of a group, series or season. The
// current query and view mode are recorded on the breadcrumb so GoBack can
// restore them.
func (s *Session) DrillIn(ctx context.Context, ch *model.Channel) (*browse.Result, error) {
	if !ch.IsDrillable() {
		return nil, ErrNotDrillable
	}

	mode := s.Filters.ViewMode
	node := &navigation.Node{
		ID:            ch.ID,
		DisplayName:   ch.Name,
		PriorQuery:    s.Filters.Query,
		PriorViewMode: &mode,
	}

	switch ch.MediaType {
	case model.MediaTypeGroup:
		node.Type = navigation.NodeCategory
		s.Filters.SetGroup(&ch.ID)
	case model.MediaTypeSerie:
		node.Type = navigation.NodeSeries
		s.Filters.SetSeries(&ch.ID, []int64{ch.SourceID})
	case model.MediaTypeSeason:
		node.Type = navigation.NodeSeason
		s.Filters.SetSeason(&ch.ID)
	}

	s.Nav.Push(node)
	s.Filters.ClearQuery()

	result, err := s.Load(ctx, false)
	if err != nil {
		return nil, err
	}

	s.Focus.SelectFirstChannel()
	return result, nil
}

// GoBack pops one drill level and restores the context recorded on it. A
// no-op when the drill path is empty.
func (s *Session) GoBack(ctx context.Context) (*browse.Result, error) {
	node := s.Nav.Pop()
	if node == nil {
		return nil, nil
	}

	switch node.Type {
	case navigation.NodeCategory:
		s.Filters.SetGroup(nil)
	case navigation.NodeSeries:
		s.Filters.SetSeries(nil, s.sources)
	case navigation.NodeSeason:
		s.Filters.SetSeason(nil)
		// re-enter the parent series scope, the season drill cleared it
		if top := s.Nav.Peek(); top != nil && top.Type == navigation.NodeSeries {
			id := top.ID
			s.Filters.SetSeries(&id, s.Filters.SourceIDs)
		}
	}

	s.Filters.SetQuery(node.PriorQuery)
	if node.PriorViewMode != nil && *node.PriorViewMode != s.Filters.ViewMode {
		s.Filters.SwitchViewMode(*node.PriorViewMode)
	}

	result, err := s.Load(ctx, false)
	if err != nil {
		return nil, err
	}

	s.Focus.SelectFirstChannel()
	return result, nil
}

// SwitchViewMode leaves any drill context and reloads under the new mode.
func (s *Session) SwitchViewMode(ctx context.Context, mode model.ViewMode) (*browse.Result, error) {
	s.leaveDrill()
	s.Filters.SwitchViewMode(mode)
	return s.Load(ctx, false)
}

// SetQuery applies the search text and reloads. Clearing the search also
// leaves any drill context.
func (s *Session) SetQuery(ctx context.Context, text string) (*browse.Result, error) {
	if text == "" {
		s.leaveDrill()
	}
	s.Filters.SetQuery(text)
	return s.Load(ctx, false)
}

func (s *Session) ToggleMediaType(ctx context.Context, t model.MediaType) (*browse.Result, error) {
	s.Filters.ToggleMediaType(t)
	return s.Load(ctx, false)
}

func (s *Session) SetSort(ctx context.Context, sort model.SortType) (*browse.Result, error) {
	s.Filters.SetSort(sort)
	return s.Load(ctx, false)
}

func (s *Session) SetGenre(ctx context.Context, genre string) (*browse.Result, error) {
	s.Filters.SetGenre(genre)
	return s.Load(ctx, false)
}

func (s *Session) SetMinRating(ctx context.Context, rating float32) (*browse.Result, error) {
	s.Filters.SetMinRating(rating)
	return s.Load(ctx, false)
}

func (s *Session) ToggleKeywords(ctx context.Context) (*browse.Result, error) {
	s.Filters.ToggleKeywords()
	return s.Load(ctx, false)
}

// BulkAction applies the action to the current selection and mirrors
// visibility changes into the loaded list.
func (s *Session) BulkAction(ctx context.Context, action selection.ActionKind) error {
	ids := s.Selection.Selected()
	if err := s.Selection.BulkAction(ctx, action); err != nil {
		return err
	}

	switch action {
	case selection.ActionHide:
		s.Loader.MarkHidden(ids, true)
	case selection.ActionUnhide, selection.ActionWhitelist:
		s.Loader.MarkHidden(ids, false)
	}
	return nil
}

// Watch stamps an item as just watched, feeding the history view.
func (s *Session) Watch(ctx context.Context, id int64) error {
	return s.catalog.SetLastWatched(ctx, id, time.Now())
}

func (s *Session) MarkStale() {
	s.stale = true
}

func (s *Session) Stale() bool {
	return s.stale
}

func (s *Session) leaveDrill() {
	if !s.Nav.HasNodes() {
		return
	}
	s.Nav.Clear()
	s.Filters.SetSeason(nil)
	s.Filters.SetSeries(nil, s.sources)
	s.Filters.SetGroup(nil)
}
