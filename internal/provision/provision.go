package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-micro.dev/v4/client"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ErrUnavailable is returned when no ingest service is wired in.
var ErrUnavailable = errors.New("ingest service is not available")

const refreshEndpoint = "Ingest.RefreshAll"

// Service triggers a full content re-import on the remote ingest service.
type Service struct {
	cli     client.Client
	name    string
	timeout time.Duration
}

func New(cli client.Client, name string, timeout time.Duration) *Service {
	return &Service{cli: cli, name: name, timeout: timeout}
}

func (s *Service) RefreshAllSources(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := s.cli.NewRequest(s.name, refreshEndpoint, &emptypb.Empty{})
	rsp := emptypb.Empty{}
	if err := s.cli.Call(ctx, req, &rsp); err != nil {
		return fmt.Errorf("refresh sources failed: %w", err)
	}

	return nil
}

// Unavailable is a stand-in for deployments without an ingest service. Every
// refresh attempt fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) RefreshAllSources(context.Context) error {
	return ErrUnavailable
}
