package browse

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	pages [][]*model.Channel
	calls []*filters.State
	err   error
}

func (c *fakeCatalog) Search(_ context.Context, f *filters.State) ([]*model.Channel, error) {
	c.calls = append(c.calls, f.Clone())
	if c.err != nil {
		return nil, c.err
	}
	if len(c.pages) == 0 {
		return nil, nil
	}
	page := c.pages[0]
	c.pages = c.pages[1:]
	return page, nil
}

type fakeProvisioner struct {
	calls int
	err   error
}

func (p *fakeProvisioner) RefreshAllSources(context.Context) error {
	p.calls++
	return p.err
}

type fakeSettings struct {
	updates int
}

func (s *fakeSettings) UpdateLastRefresh(context.Context, time.Time) error {
	s.updates++
	return nil
}

type fakeNotifier struct {
	infos, successes, errors []string
}

func (n *fakeNotifier) Info(text string)    { n.infos = append(n.infos, text) }
func (n *fakeNotifier) Success(text string) { n.successes = append(n.successes, text) }
func (n *fakeNotifier) Error(text string)   { n.errors = append(n.errors, text) }

func makePage(count int, mediaType model.MediaType) []*model.Channel {
	page := make([]*model.Channel, count)
	for i := range page {
		page[i] = &model.Channel{
			ID:        int64(i + 1),
			Name:      fmt.Sprintf("Channel %02d", i+1),
			MediaType: mediaType,
		}
	}
	return page
}

func makeLoader(catalog *fakeCatalog, sources int) (*Loader, *fakeProvisioner, *fakeNotifier) {
	provisioner := &fakeProvisioner{}
	notifier := &fakeNotifier{}
	l := NewLoader(Settings{
		Catalog:        catalog,
		Provisioner:    provisioner,
		SettingsStore:  &fakeSettings{},
		Notifier:       notifier,
		EnabledSources: sources,
	})
	return l, provisioner, notifier
}

func TestEmptyMediaTypesShortCircuit(t *testing.T) {
	catalog := &fakeCatalog{}
	l, provisioner, _ := makeLoader(catalog, 1)

	f := filters.New([]int64{1}, model.SortProvider)
	f.ToggleMediaType(model.MediaTypeLivestream) // none left

	result, err := l.Load(context.Background(), f, false)
	require.NoError(t, err)
	assert.Empty(t, result.Channels)
	assert.True(t, result.ReachedEnd)
	assert.Empty(t, catalog.calls)
	assert.Zero(t, provisioner.calls)
}

func TestReachedEnd(t *testing.T) {
	type testCase struct {
		pageLen    int
		reachedEnd bool
	}

	testCases := []testCase{
		{pageLen: PageSize, reachedEnd: false},
		{pageLen: PageSize - 1, reachedEnd: true},
		{pageLen: 0, reachedEnd: true},
	}

	for _, tc := range testCases {
		catalog := &fakeCatalog{pages: [][]*model.Channel{makePage(tc.pageLen, model.MediaTypeLivestream)}}
		l, _, _ := makeLoader(catalog, 0)

		f := filters.New([]int64{1}, model.SortProvider)
		f.SetQuery("x") // suppress recovery paths for the 0-item case

		result, err := l.Load(context.Background(), f, false)
		require.NoError(t, err)
		assert.Equal(t, tc.reachedEnd, result.ReachedEnd, "page of %d items", tc.pageLen)
	}
}

func TestFallbackBroadening(t *testing.T) {
	found := makePage(3, model.MediaTypeMovie)
	catalog := &fakeCatalog{pages: [][]*model.Channel{{}, found}}
	l, _, notifier := makeLoader(catalog, 1)

	f := filters.New([]int64{1}, model.SortProvider)
	f.SetQuery("abc")

	result, err := l.Load(context.Background(), f, false)
	require.NoError(t, err)
	require.Len(t, catalog.calls, 2)
	assert.Equal(t, []model.MediaType{model.MediaTypeLivestream}, catalog.calls[0].MediaTypeList())
	assert.Equal(t, model.PrimaryMediaTypes, catalog.calls[1].MediaTypeList())

	assert.True(t, result.Broadened)
	assert.Len(t, result.Channels, 3)
	// the broadened set stays on the filter state
	assert.Equal(t, model.PrimaryMediaTypes, f.MediaTypeList())
	assert.NotEmpty(t, notifier.infos)
}

func TestAutoProvision(t *testing.T) {
	imported := makePage(10, model.MediaTypeLivestream)
	catalog := &fakeCatalog{pages: [][]*model.Channel{{}, imported}}
	l, provisioner, notifier := makeLoader(catalog, 2)

	f := filters.New([]int64{1, 2}, model.SortProvider)

	result, err := l.Load(context.Background(), f, false)
	require.NoError(t, err)
	assert.Equal(t, 1, provisioner.calls)
	assert.Len(t, catalog.calls, 2)
	assert.Len(t, result.Channels, 10)
	assert.NotEmpty(t, notifier.successes)
}

func TestAutoProvisionSkippedWithoutSources(t *testing.T) {
	catalog := &fakeCatalog{}
	l, provisioner, _ := makeLoader(catalog, 0)

	f := filters.New(nil, model.SortProvider)
	_, err := l.Load(context.Background(), f, false)
	require.NoError(t, err)
	assert.Zero(t, provisioner.calls)
	assert.Len(t, catalog.calls, 1)
}

func TestAutoProvisionFailurePropagates(t *testing.T) {
	catalog := &fakeCatalog{}
	l, provisioner, notifier := makeLoader(catalog, 1)
	provisioner.err = errors.New("sources unreachable")

	f := filters.New([]int64{1}, model.SortProvider)
	_, err := l.Load(context.Background(), f, false)
	require.Error(t, err)
	assert.NotEmpty(t, notifier.errors)
	assert.False(t, l.Loading())
}

func TestLoadMoreAppends(t *testing.T) {
	first := makePage(PageSize, model.MediaTypeLivestream)
	second := makePage(5, model.MediaTypeLivestream)
	catalog := &fakeCatalog{pages: [][]*model.Channel{first, second}}
	l, _, _ := makeLoader(catalog, 0)

	f := filters.New([]int64{1}, model.SortProvider)
	f.SetQuery("news")

	_, err := l.Load(context.Background(), f, false)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Page)

	result, err := l.LoadMore(context.Background(), f)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, f.Page)
	assert.Len(t, result.Channels, PageSize+5)
	assert.True(t, result.ReachedEnd)

	// at the end the next call is a no-op
	result, err = l.LoadMore(context.Background(), f)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Len(t, catalog.calls, 2)
}

func TestHiddenMirrorFiltersResults(t *testing.T) {
	catalog := &fakeCatalog{pages: [][]*model.Channel{makePage(4, model.MediaTypeLivestream)}}
	l, _, _ := makeLoader(catalog, 0)
	l.MarkHidden([]int64{2, 3}, true)

	f := filters.New([]int64{1}, model.SortProvider)
	f.SetQuery("x")

	result, err := l.Load(context.Background(), f, false)
	require.NoError(t, err)
	require.Len(t, result.Channels, 2)
	assert.Equal(t, int64(1), result.Channels[0].ID)
	assert.Equal(t, int64(4), result.Channels[1].ID)
}

func TestShouldLoadMore(t *testing.T) {
	l, _, _ := makeLoader(&fakeCatalog{}, 0)

	assert.True(t, l.ShouldLoadMore(750, 1000, 200))
	assert.False(t, l.ShouldLoadMore(500, 1000, 200))

	l.reachedEnd = true
	assert.False(t, l.ShouldLoadMore(750, 1000, 200))

	l.reachedEnd = false
	l.loading = true
	assert.False(t, l.ShouldLoadMore(750, 1000, 200))
}

func TestSearchErrorPropagates(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("catalog down")}
	l, _, _ := makeLoader(catalog, 0)

	f := filters.New([]int64{1}, model.SortProvider)
	_, err := l.Load(context.Background(), f, false)
	require.Error(t, err)
	assert.False(t, l.Loading())
}
