package main

import (
	"os"

	"github.com/RacoonMediaServer/rms-catalog/internal/db"
	"github.com/RacoonMediaServer/rms-catalog/internal/provision"
	"github.com/RacoonMediaServer/rms-catalog/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
	"go-micro.dev/v4/logger"
)

func main() {
	app := &cli.App{
		Name:  "rms-catalog-browser",
		Usage: "Terminal browser over the media catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "database",
				Usage: "MongoDB connection string",
				Value: "mongodb://127.0.0.1:27017",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%s", err)
	}
}

func run(c *cli.Context) error {
	database, err := db.Connect(c.String("database"))
	if err != nil {
		return err
	}

	notices := newNoticeLog()
	sessions := session.NewManager(session.Settings{
		Catalog:     database,
		Provisioner: provision.Unavailable{},
		Notifier:    notices,
	})

	browseSession, err := sessions.Open(c.Context)
	if err != nil {
		return err
	}
	if _, err = browseSession.Load(c.Context, false); err != nil {
		logger.Warnf("Initial load failed: %s", err)
	}

	program := tea.NewProgram(newBrowserModel(browseSession, notices), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
