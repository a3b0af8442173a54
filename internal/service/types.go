package service

import (
	"github.com/RacoonMediaServer/rms-catalog/internal/cluster"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/RacoonMediaServer/rms-catalog/internal/selection"
)

type OpenSessionResponse struct {
	SessionID string
}

type SessionRequest struct {
	SessionID string
}

type LoadRequest struct {
	SessionID string
	More      bool
}

type SearchRequest struct {
	SessionID string
	Query     string
}

type ViewModeRequest struct {
	SessionID string
	Mode      model.ViewMode
}

type MediaTypeRequest struct {
	SessionID string
	MediaType model.MediaType
}

type SortRequest struct {
	SessionID string
	Sort      model.SortType
}

type DrillRequest struct {
	SessionID string
	ItemID    int64
}

type WatchRequest struct {
	SessionID string
	ItemID    int64
}

type SelectRequest struct {
	SessionID string
	ItemID    int64
}

type SelectionModeRequest struct {
	SessionID string
	Enabled   bool
}

type BulkActionRequest struct {
	SessionID string
	Action    selection.ActionKind
}

type FamiliesRequest struct {
	SessionID string
	Query     string
}

type FamiliesResponse struct {
	Families []*cluster.Family
}

type FamilyRequest struct {
	SessionID string
	Prefix    string
}

type SubCategoryRequest struct {
	SessionID string
	Prefix    string
	ChildID   int64
}

type GlobalVisibilityRequest struct {
	SessionID string
	Hidden    bool
}

type GenreRequest struct {
	SessionID string
	Genre     string
}

type RatingRequest struct {
	SessionID string
	MinRating float32
}

type ItemsResponse struct {
	Channels   []*model.Channel
	ReachedEnd bool
	Broadened  bool

	// Path is the breadcrumb from the outermost drill level inward.
	Path []string
}
