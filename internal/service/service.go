package service

import (
	"context"

	"github.com/RacoonMediaServer/rms-catalog/internal/lock"
	"github.com/RacoonMediaServer/rms-catalog/internal/session"
	"go-micro.dev/v4"
	"go-micro.dev/v4/server"
	"google.golang.org/protobuf/types/known/emptypb"
)

// CatalogService is the RPC facade over browse sessions. Every session
// operation runs under the per-session lock, so callers may issue requests
// concurrently while each session stays single-threaded.
type CatalogService struct {
	sessions *session.Manager
}

func New(sessions *session.Manager) *CatalogService {
	return &CatalogService{sessions: sessions}
}

// Register attaches the facade handler to the server.
func (s *CatalogService) Register(srv server.Server) error {
	return micro.RegisterHandler(srv, s)
}

func (s *CatalogService) OpenSession(ctx context.Context, _ *emptypb.Empty, rsp *OpenSessionResponse) error {
	browseSession, err := s.sessions.Open(ctx)
	if err != nil {
		return err
	}
	rsp.SessionID = browseSession.ID
	return nil
}

func (s *CatalogService) CloseSession(ctx context.Context, req *SessionRequest, _ *emptypb.Empty) error {
	unlocker, err := s.sessions.Lock(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	s.sessions.Close(req.SessionID)
	return nil
}

// acquire resolves the session and takes its lock. The caller must release
// the returned unlocker.
func (s *CatalogService) acquire(ctx context.Context, id string) (*session.Session, lock.Unlocker, error) {
	unlocker, err := s.sessions.Lock(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	browseSession, err := s.sessions.Get(id)
	if err != nil {
		unlocker.Unlock()
		return nil, nil, err
	}

	return browseSession, unlocker, nil
}
