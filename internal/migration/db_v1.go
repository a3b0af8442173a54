package migration

import (
	"context"
	"fmt"

	"go-micro.dev/v4/logger"
)

// Records imported by early ingest versions miss the visibility flags, which
// breaks the hidden=false browse filter.
func (m *Migrator) migrateDatabaseV0ToV1(ctx context.Context) error {
	touched, err := m.Database.NormalizeChannelFlags(ctx)
	if err != nil {
		return fmt.Errorf("normalize channel flags failed: %w", err)
	}

	if touched > 0 {
		logger.Infof("Backfilled flags on %d channels", touched)
	}
	return nil
}
