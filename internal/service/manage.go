package service

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *CatalogService) SetSelectionMode(ctx context.Context, req *SelectionModeRequest, _ *emptypb.Empty) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	browseSession.Selection.SetMode(req.Enabled)
	return nil
}

func (s *CatalogService) ToggleSelected(ctx context.Context, req *SelectRequest, _ *emptypb.Empty) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	browseSession.Selection.Toggle(req.ItemID)
	return nil
}

func (s *CatalogService) BulkAction(ctx context.Context, req *BulkActionRequest, _ *emptypb.Empty) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	return browseSession.BulkAction(ctx, req.Action)
}

func (s *CatalogService) Families(ctx context.Context, req *FamiliesRequest, rsp *FamiliesResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	if err := browseSession.Categories.Load(ctx); err != nil {
		return err
	}
	browseSession.Categories.SetQuery(req.Query)
	rsp.Families = browseSession.Categories.Families()
	return nil
}

func (s *CatalogService) ToggleFamilySelected(ctx context.Context, req *FamilyRequest, _ *emptypb.Empty) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	browseSession.Categories.ToggleSelected(req.Prefix)
	return nil
}

func (s *CatalogService) ToggleFamilyExpanded(ctx context.Context, req *FamilyRequest, _ *emptypb.Empty) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	browseSession.Categories.ToggleExpanded(req.Prefix)
	return nil
}

func (s *CatalogService) ToggleFamily(ctx context.Context, req *FamilyRequest, rsp *FamiliesResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	if err := browseSession.Categories.ToggleFamily(ctx, req.Prefix); err != nil {
		return err
	}
	rsp.Families = browseSession.Categories.Families()
	return nil
}

func (s *CatalogService) ToggleSubCategory(ctx context.Context, req *SubCategoryRequest, rsp *FamiliesResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	if err := browseSession.Categories.ToggleSubCategory(ctx, req.Prefix, req.ChildID); err != nil {
		return err
	}
	rsp.Families = browseSession.Categories.Families()
	return nil
}

func (s *CatalogService) FocusMode(ctx context.Context, req *SessionRequest, rsp *FamiliesResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	if err := browseSession.Categories.FocusMode(ctx); err != nil {
		return err
	}
	rsp.Families = browseSession.Categories.Families()
	return nil
}

func (s *CatalogService) ApplyBulkGlobal(ctx context.Context, req *GlobalVisibilityRequest, rsp *FamiliesResponse) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	if err := browseSession.Categories.ApplyBulkGlobal(ctx, req.Hidden); err != nil {
		return err
	}
	rsp.Families = browseSession.Categories.Families()
	return nil
}

func (s *CatalogService) RefreshAll(ctx context.Context, req *SessionRequest, _ *emptypb.Empty) error {
	browseSession, unlocker, err := s.acquire(ctx, req.SessionID)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	return browseSession.Loader.RefreshAll(ctx, "requested by user")
}
