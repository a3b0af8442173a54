package browse

import (
	"context"
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
)

// Catalog is the remote catalog search surface
type Catalog interface {
	Search(ctx context.Context, f *filters.State) ([]*model.Channel, error)
}

// Provisioner re-imports the catalog content from all configured sources
type Provisioner interface {
	RefreshAllSources(ctx context.Context) error
}

// SettingsStore persists the refresh bookkeeping
type SettingsStore interface {
	UpdateLastRefresh(ctx context.Context, at time.Time) error
}

// Notifier delivers fire-and-forget user-visible notices
type Notifier interface {
	Info(text string)
	Success(text string)
	Error(text string)
}
