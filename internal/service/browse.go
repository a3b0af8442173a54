package service

import (
	"context"
	"fmt"

	"github.com/RacoonMediaServer/rms-catalog/internal/browse"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/RacoonMediaServer/rms-catalog/internal/session"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *CatalogService) Load(ctx context.Context, req *LoadRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.Load(ctx, req.More)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) LoadMore(ctx context.Context, req *SessionRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.LoadMore(ctx)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) Search(ctx context.Context, req *SearchRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.SetQuery(ctx, req.Query)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) SwitchViewMode(ctx context.Context, req *ViewModeRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.SwitchViewMode(ctx, req.Mode)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) ToggleMediaType(ctx context.Context, req *MediaTypeRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.ToggleMediaType(ctx, req.MediaType)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) SetSort(ctx context.Context, req *SortRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.SetSort(ctx, req.Sort)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) ToggleKeywords(ctx context.Context, req *SessionRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.ToggleKeywords(ctx)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) SetGenre(ctx context.Context, req *GenreRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.SetGenre(ctx, req.Genre)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) SetMinRating(ctx context.Context, req *RatingRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.SetMinRating(ctx, req.MinRating)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) Drill(ctx context.Context, req *DrillRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	item := findLoaded(browseSession, req.ItemID)
	if item == nil {
		return fmt.Errorf("item %d is not in the loaded page", req.ItemID)
	}

	result, err := browseSession.DrillIn(ctx, item)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) Back(ctx context.Context, req *SessionRequest, rsp *ItemsResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	result, err := browseSession.GoBack(ctx)
	if err != nil {
		return err
	}
	fillItems(rsp, browseSession, result)
	return nil
}

func (s *CatalogService) Watch(ctx context.Context, req *WatchRequest, _ *emptypb.Empty) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	return browseSession.Watch(ctx, req.ItemID)
}

func fillItems(rsp *ItemsResponse, browseSession *session.Session, result *browse.Result) {
	rsp.Path = browseSession.Nav.Path()
	if result == nil {
		rsp.Channels = browseSession.Loader.Channels()
		rsp.ReachedEnd = browseSession.Loader.ReachedEnd()
		return
	}
	rsp.Channels = result.Channels
	rsp.ReachedEnd = result.ReachedEnd
	rsp.Broadened = result.Broadened
}

func findLoaded(browseSession *session.Session, id int64) *model.Channel {
	for _, ch := range browseSession.Loader.Channels() {
		if ch.ID == id {
			return ch
		}
	}
	return nil
}
