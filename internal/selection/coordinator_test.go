package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	calls   int
	lastIDs []int64
	lastAct ActionKind
	err     error
}

func (c *fakeCatalog) BulkUpdate(_ context.Context, ids []int64, action ActionKind) error {
	c.calls++
	c.lastIDs = ids
	c.lastAct = action
	return c.err
}

type fakeNotifier struct {
	successes, errors int
}

func (n *fakeNotifier) Success(string) { n.successes++ }
func (n *fakeNotifier) Error(string)   { n.errors++ }

func TestToggleAndSelected(t *testing.T) {
	c := NewCoordinator(&fakeCatalog{}, &fakeNotifier{})

	c.Toggle(3)
	c.Toggle(1)
	c.Toggle(2)
	assert.Equal(t, []int64{1, 2, 3}, c.Selected())
	assert.True(t, c.IsSelected(2))

	c.Toggle(2)
	assert.Equal(t, []int64{1, 3}, c.Selected())
	assert.False(t, c.IsSelected(2))
}

func TestBulkActionEmptySelectionNoOps(t *testing.T) {
	catalog := &fakeCatalog{}
	c := NewCoordinator(catalog, &fakeNotifier{})

	require.NoError(t, c.BulkAction(context.Background(), ActionHide))
	assert.Zero(t, catalog.calls)
}

func TestBulkActionClearsSelectionOnSuccess(t *testing.T) {
	catalog := &fakeCatalog{}
	notifier := &fakeNotifier{}
	c := NewCoordinator(catalog, notifier)
	c.Toggle(1)
	c.Toggle(2)

	require.NoError(t, c.BulkAction(context.Background(), ActionFavorite))
	assert.Equal(t, 1, catalog.calls)
	assert.Equal(t, []int64{1, 2}, catalog.lastIDs)
	assert.Equal(t, ActionFavorite, catalog.lastAct)
	assert.Zero(t, c.Count())
	assert.Equal(t, 1, notifier.successes)
}

func TestBulkActionKeepsSelectionOnFailure(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("backend down")}
	notifier := &fakeNotifier{}
	c := NewCoordinator(catalog, notifier)
	c.Toggle(1)

	err := c.BulkAction(context.Background(), ActionHide)
	require.Error(t, err)
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, 1, notifier.errors)
}

func TestLeavingModeDropsSelection(t *testing.T) {
	c := NewCoordinator(&fakeCatalog{}, &fakeNotifier{})
	c.SetMode(true)
	c.Toggle(1)
	assert.True(t, c.Mode())

	c.SetMode(false)
	assert.False(t, c.Mode())
	assert.Zero(t, c.Count())
}
