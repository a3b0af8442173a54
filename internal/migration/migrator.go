package migration

import (
	"context"
	"fmt"

	"github.com/RacoonMediaServer/rms-catalog/internal/db"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"go-micro.dev/v4/logger"
)

type migratorFn func(ctx context.Context) error

type Migrator struct {
	CurrentVersion string
	Database       *db.Database

	mi *model.MetaInfo
}

func (m *Migrator) Run() error {
	var err error

	m.mi, err = m.Database.GetMetaInfo(context.Background())
	if err != nil {
		return fmt.Errorf("get metainformation failed: %w", err)
	}

	if db.Version != m.mi.DatabaseVersion {
		logger.Warnf("Database schema version changed, migrate")
		if m.mi.DatabaseVersion > db.Version {
			return fmt.Errorf("cannot migrate database from future version: %d", m.mi.DatabaseVersion)
		}

		if err = m.migrateDatabase(); err != nil {
			return fmt.Errorf("migrate database failed: %w", err)
		}
	}

	if m.CurrentVersion != m.mi.Version {
		m.mi.Version = m.CurrentVersion
		if err = m.Database.SetMetaInfo(context.Background(), *m.mi); err != nil {
			return fmt.Errorf("update meta information failed: %w", err)
		}
	}

	return nil
}

func (m *Migrator) migrateDatabase() error {
	migrations := m.getMigrations()
	for cur := m.mi.DatabaseVersion; cur < db.Version; cur++ {
		if err := migrations[cur](context.Background()); err != nil {
			return fmt.Errorf("from %d to %d: %w", cur, cur+1, err)
		}
		m.mi.DatabaseVersion = cur + 1
		if err := m.Database.SetMetaInfo(context.Background(), *m.mi); err != nil {
			return fmt.Errorf("update meta information failed: %w", err)
		}
	}
	return nil
}

func (m *Migrator) getMigrations() []migratorFn {
	return []migratorFn{
		m.migrateDatabaseV0ToV1,
	}
}
