package session

import (
	"context"
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/RacoonMediaServer/rms-catalog/internal/selection"
)

// Catalog is the full persistent store surface a browse session needs
type Catalog interface {
	Search(ctx context.Context, f *filters.State) ([]*model.Channel, error)
	BulkSetHidden(ctx context.Context, ids []int64, hidden bool) error
	BulkUpdate(ctx context.Context, ids []int64, kind selection.ActionKind) error
	SetLastWatched(ctx context.Context, id int64, at time.Time) error

	EnabledSources(ctx context.Context) ([]model.Source, error)

	GetSettings(ctx context.Context) (*model.Settings, error)
	UpdateLastRefresh(ctx context.Context, at time.Time) error
}

// Provisioner re-imports the catalog content from all configured sources
type Provisioner interface {
	RefreshAllSources(ctx context.Context) error
}

// Notifier delivers fire-and-forget user-visible notices
type Notifier interface {
	Info(text string)
	Success(text string)
	Error(text string)
}
