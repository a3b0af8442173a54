package service

import (
	"context"

	"github.com/RacoonMediaServer/rms-packages/pkg/events"
	"github.com/RacoonMediaServer/rms-packages/pkg/pubsub"
	"go-micro.dev/v4"
	"go-micro.dev/v4/logger"
	"go-micro.dev/v4/server"
)

// Subscribe subscribes to notification events for tracking content changes
func (s *CatalogService) Subscribe(server server.Server) error {
	return micro.RegisterSubscriber(pubsub.NotificationTopic, server, s.handleNotification)
}

func (s *CatalogService) handleNotification(ctx context.Context, event events.Notification) error {
	switch event.Kind {
	case events.Notification_DownloadComplete, events.Notification_TorrentRemoved, events.Notification_NewContentReleased:
		logger.Debugf("Content changed (%s from %s), invalidating sessions", event.Kind, event.Sender)
		s.sessions.Invalidate()
	}
	return nil
}
