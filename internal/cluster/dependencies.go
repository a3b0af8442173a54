package cluster

import (
	"context"

	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
)

// Catalog is the part of the remote catalog the manager needs
type Catalog interface {
	Search(ctx context.Context, f *filters.State) ([]*model.Channel, error)
	BulkSetHidden(ctx context.Context, ids []int64, hidden bool) error
}

// Notifier delivers fire-and-forget user-visible notices
type Notifier interface {
	Info(text string)
	Success(text string)
	Error(text string)
}
