package main

import (
	"context"
	"fmt"
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/config"
	"github.com/RacoonMediaServer/rms-catalog/internal/db"
	"github.com/RacoonMediaServer/rms-catalog/internal/migration"
	"github.com/RacoonMediaServer/rms-catalog/internal/notify"
	"github.com/RacoonMediaServer/rms-catalog/internal/provision"
	"github.com/RacoonMediaServer/rms-catalog/internal/schedule"
	"github.com/RacoonMediaServer/rms-catalog/internal/service"
	"github.com/RacoonMediaServer/rms-catalog/internal/session"
	"github.com/urfave/cli/v2"
	"go-micro.dev/v4"
	"go-micro.dev/v4/logger"

	// Plugins
	_ "github.com/go-micro/plugins/v4/registry/etcd"
)

var Version = "v0.0.0"

const serviceName = "rms-catalog"

func main() {
	logger.Infof("%s %s", serviceName, Version)
	defer logger.Info("DONE.")

	useDebug := false

	microService := micro.NewService(
		micro.Name(serviceName),
		micro.Version(Version),
		micro.Flags(
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"debug"},
				Usage:       "debug log level",
				Value:       false,
				Destination: &useDebug,
			},
		),
	)

	microService.Init(
		micro.Action(func(context *cli.Context) error {
			configFile := fmt.Sprintf("/etc/rms/%s.json", serviceName)
			if context.IsSet("config") {
				configFile = context.String("config")
			}
			return config.Load(configFile)
		}),
	)

	if useDebug {
		_ = logger.Init(logger.WithLevel(logger.DebugLevel))
	}

	cfg := config.Config()

	database, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Fatalf("Connect to database failed: %s", err)
	}
	logger.Info("Connected to database")

	m := migration.Migrator{
		CurrentVersion: Version,
		Database:       database,
	}
	if err = m.Run(); err != nil {
		logger.Fatalf("Migration failed: %s", err)
	}

	// seed the persisted settings from the config before the first refresh
	seedCtx := context.Background()
	settings, err := database.GetSettings(seedCtx)
	if err != nil {
		logger.Fatalf("Read settings failed: %s", err)
	}
	if settings.LastRefresh.IsZero() {
		settings.RefreshIntervalHours = cfg.Refresh.IntervalHours
		settings.RefreshOnStart = cfg.Refresh.OnStart
		if err = database.SaveSettings(seedCtx, settings); err != nil {
			logger.Warnf("Store settings failed: %s", err)
		}
	}

	var provisioner session.Provisioner = provision.Unavailable{}
	if cfg.Ingest.Service != "" {
		timeout := time.Duration(cfg.Ingest.Timeout) * time.Second
		provisioner = provision.New(microService.Client(), cfg.Ingest.Service, timeout)
	}

	sched := schedule.New()
	defer sched.Stop()

	sessions := session.NewManager(session.Settings{
		Catalog:     database,
		Provisioner: provisioner,
		Notifier:    notify.New(microService.Client()),
		Scheduler:   sched,
	})
	sessions.StartBackgroundRefresh(time.Duration(cfg.Refresh.IntervalHours) * time.Hour)

	catalogService := service.New(sessions)
	if err = catalogService.Register(microService.Server()); err != nil {
		logger.Fatalf("Register service failed: %s", err)
	}
	if err = catalogService.Subscribe(microService.Server()); err != nil {
		logger.Warnf("Subscribe to notifications failed: %s", err)
	}

	if err = microService.Run(); err != nil {
		logger.Fatalf("Run service failed: %s", err)
	}
}
