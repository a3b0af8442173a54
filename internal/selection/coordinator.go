package selection

import (
	"context"
	"fmt"
	"sort"

	"go-micro.dev/v4/logger"
)

// ActionKind is a batch operation applied to every selected item
type ActionKind int

const (
	ActionFavorite ActionKind = iota
	ActionUnfavorite
	ActionHide
	ActionUnhide
	ActionWhitelist
)

func (a ActionKind) String() string {
	switch a {
	case ActionFavorite:
		return "favorite"
	case ActionUnfavorite:
		return "unfavorite"
	case ActionHide:
		return "hide"
	case ActionUnhide:
		return "unhide"
	case ActionWhitelist:
		return "whitelist"
	}
	return "unknown"
}

// Catalog executes one batch action in a single round trip
type Catalog interface {
	BulkUpdate(ctx context.Context, ids []int64, action ActionKind) error
}

// Notifier delivers fire-and-forget user-visible notices
type Notifier interface {
	Success(text string)
	Error(text string)
}

// Coordinator tracks multi-select mode and runs bulk operations over the
// active selection. It holds no state beyond the mode flag and the id set.
type Coordinator struct {
	catalog  Catalog
	notifier Notifier

	mode bool
	ids  map[int64]struct{}
}

func NewCoordinator(catalog Catalog, notifier Notifier) *Coordinator {
	return &Coordinator{
		catalog:  catalog,
		notifier: notifier,
		ids:      map[int64]struct{}{},
	}
}

// SetMode turns selection mode on or off; leaving it drops the selection.
func (c *Coordinator) SetMode(on bool) {
	c.mode = on
	if !on {
		c.Clear()
	}
}

func (c *Coordinator) Mode() bool { return c.mode }

// Toggle adds the id to the selection or removes it.
func (c *Coordinator) Toggle(id int64) {
	if _, ok := c.ids[id]; ok {
		delete(c.ids, id)
	} else {
		c.ids[id] = struct{}{}
	}
}

func (c *Coordinator) IsSelected(id int64) bool {
	_, ok := c.ids[id]
	return ok
}

func (c *Coordinator) Count() int { return len(c.ids) }

// Selected returns the selected ids in ascending order.
func (c *Coordinator) Selected() []int64 {
	ids := make([]int64, 0, len(c.ids))
	for id := range c.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c *Coordinator) Clear() {
	c.ids = map[int64]struct{}{}
}

// BulkAction applies the action to the current selection in one batch call.
// An empty selection is not an error and silently no-ops. On success the
// selection is cleared; on failure it stays intact for a retry.
func (c *Coordinator) BulkAction(ctx context.Context, action ActionKind) error {
	ids := c.Selected()
	if len(ids) == 0 {
		return nil
	}

	if err := c.catalog.BulkUpdate(ctx, ids, action); err != nil {
		logger.Errorf("Bulk %s failed: %s", action, err)
		c.notifier.Error(fmt.Sprintf("Bulk %s failed", action))
		return fmt.Errorf("bulk %s failed: %w", action, err)
	}

	c.Clear()
	c.notifier.Success(fmt.Sprintf("Successfully executed bulk update: %s", action))
	return nil
}
