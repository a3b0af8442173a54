package browse

import (
	"context"
	"fmt"
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"go-micro.dev/v4/logger"
)

// PageSize is the fixed size of one catalog page
const PageSize = 36

// loadMoreThreshold is the scrolled share of the total height after which the
// next page gets requested
const loadMoreThreshold = 0.75

// Result is the outcome of one load pass
type Result struct {
	Channels   []*model.Channel
	ReachedEnd bool

	// Broadened is set when a fallback search widened the media type set
	Broadened bool
}

// Settings holds all dependencies of the loader
type Settings struct {
	Catalog        Catalog
	Provisioner    Provisioner
	SettingsStore  SettingsStore
	Notifier       Notifier
	EnabledSources int
}

// Loader orchestrates paginated fetches against the catalog and owns the
// accumulated channel list. It is not safe for concurrent use: callers
// serialize access per browse session.
type Loader struct {
	catalog        Catalog
	provisioner    Provisioner
	settings       SettingsStore
	notifier       Notifier
	enabledSources int

	loading    bool
	channels   []*model.Channel
	reachedEnd bool
	hidden     map[int64]struct{}
}

func NewLoader(settings Settings) *Loader {
	return &Loader{
		catalog:        settings.Catalog,
		provisioner:    settings.Provisioner,
		settings:       settings.SettingsStore,
		notifier:       settings.Notifier,
		enabledSources: settings.EnabledSources,
		hidden:         map[int64]struct{}{},
	}
}

// Load fetches one page of the catalog for the given filter state. A fresh
// load (more=false) discards accumulated channels and resets pagination, a
// load-more appends the next page. Remote failures propagate to the caller.
func (l *Loader) Load(ctx context.Context, f *filters.State, more bool) (*Result, error) {
	l.loading = true
	defer func() { l.loading = false }()

	if more {
		f.Page++
	} else {
		f.Page = 1
		l.channels = nil
	}

	// Management views fetch hidden items through their own path
	f.ShowHidden = false

	if len(f.MediaTypes) == 0 {
		l.channels = nil
		l.reachedEnd = true
		return &Result{ReachedEnd: true}, nil
	}

	fetched, err := l.catalog.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search channels failed: %w", err)
	}

	if !more && len(fetched) == 0 && f.Query == "" && f.ViewMode == model.ViewModeAll && l.enabledSources > 0 {
		fetched, err = l.provisionAndRetry(ctx, f)
		if err != nil {
			return nil, err
		}
	}

	broadened := false
	if !more && len(fetched) == 0 && f.Query != "" && len(f.MediaTypes) < len(model.PrimaryMediaTypes) {
		fetched, err = l.broadenSearch(ctx, f)
		if err != nil {
			return nil, err
		}
		broadened = true
	}

	l.reachedEnd = len(fetched) < PageSize
	page := l.processPage(fetched, f)
	if more {
		l.channels = append(l.channels, page...)
	} else {
		l.channels = page
	}
	f.MarkViewLoaded()

	return &Result{Channels: l.channels, ReachedEnd: l.reachedEnd, Broadened: broadened}, nil
}

// LoadMore requests the next page. It is a no-op returning nil while a load
// is in flight or after the last page was reached.
func (l *Loader) LoadMore(ctx context.Context, f *filters.State) (*Result, error) {
	if l.loading || l.reachedEnd {
		return nil, nil
	}
	return l.Load(ctx, f, true)
}

// provisionAndRetry handles a first-run or stale cache: an empty unfiltered
// result with configured sources triggers a full refresh and a single retry.
func (l *Loader) provisionAndRetry(ctx context.Context, f *filters.State) ([]*model.Channel, error) {
	l.notifier.Info("Importing channels from the configured sources...")

	if err := l.provisioner.RefreshAllSources(ctx); err != nil {
		l.notifier.Error("Import failed. Please check the source settings")
		return nil, fmt.Errorf("refresh sources failed: %w", err)
	}
	l.storeLastRefresh(ctx)

	fetched, err := l.catalog.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search channels failed: %w", err)
	}
	if len(fetched) > 0 {
		l.notifier.Success(fmt.Sprintf("Successfully imported %d channels", len(fetched)))
	}
	return fetched, nil
}

// broadenSearch re-issues an empty filtered query across all primary media
// types. The broadened set is written back to the filter state so the UI
// stays consistent with what was actually queried.
func (l *Loader) broadenSearch(ctx context.Context, f *filters.State) ([]*model.Channel, error) {
	f.SetMediaTypes(model.PrimaryMediaTypes)

	fetched, err := l.catalog.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("fallback search failed: %w", err)
	}
	if len(fetched) > 0 {
		l.notifier.Info("No results in the current scope. Found matches in other areas")
	}
	return fetched, nil
}

// RefreshAll re-imports the whole catalog and persists the refresh timestamp.
func (l *Loader) RefreshAll(ctx context.Context, reason string) error {
	l.notifier.Info(fmt.Sprintf("Refreshing all sources (%s)...", reason))

	if err := l.provisioner.RefreshAllSources(ctx); err != nil {
		l.notifier.Error(fmt.Sprintf("Failed to refresh sources (%s)", reason))
		return fmt.Errorf("refresh sources failed: %w", err)
	}
	l.storeLastRefresh(ctx)
	l.notifier.Success(fmt.Sprintf("Successfully refreshed all sources (%s)", reason))
	return nil
}

func (l *Loader) storeLastRefresh(ctx context.Context) {
	if err := l.settings.UpdateLastRefresh(ctx, time.Now()); err != nil {
		logger.Warnf("Store last refresh time failed: %s", err)
	}
}

// processPage sorts and filters a newly fetched page. Only this page is
// sorted: pages already rendered must never reorder.
func (l *Loader) processPage(fetched []*model.Channel, f *filters.State) []*model.Channel {
	sortPage(fetched, f.Sort, f.ViewStable(), f.Query != "")

	page := make([]*model.Channel, 0, len(fetched))
	for _, c := range fetched {
		if _, isHidden := l.hidden[c.ID]; isHidden {
			continue
		}
		if !matchesGenre(c, f.Genre) {
			continue
		}
		if f.MinRating > 0 && c.Rating < f.MinRating {
			continue
		}
		page = append(page, c)
	}
	return page
}

// ShouldLoadMore reports whether the viewport bottom crossed the load-more
// threshold of the scrollable height.
func (l *Loader) ShouldLoadMore(scrollTop, scrollHeight, viewportHeight int) bool {
	if l.reachedEnd || l.loading {
		return false
	}
	return float64(scrollTop+viewportHeight) >= float64(scrollHeight)*loadMoreThreshold
}

// MarkHidden mirrors a just-confirmed remote visibility change so already
// accumulated pages stay consistent without a reload.
func (l *Loader) MarkHidden(ids []int64, hidden bool) {
	for _, id := range ids {
		if hidden {
			l.hidden[id] = struct{}{}
		} else {
			delete(l.hidden, id)
		}
	}

	if !hidden {
		return
	}
	kept := l.channels[:0]
	for _, ch := range l.channels {
		if _, ok := l.hidden[ch.ID]; !ok {
			kept = append(kept, ch)
		}
	}
	l.channels = kept
}

func (l *Loader) Channels() []*model.Channel { return l.channels }
func (l *Loader) ChannelCount() int          { return len(l.channels) }
func (l *Loader) ReachedEnd() bool           { return l.reachedEnd }
func (l *Loader) Loading() bool              { return l.loading }

// Reset returns the loader to its initial state.
func (l *Loader) Reset() {
	l.loading = false
	l.channels = nil
	l.reachedEnd = false
}
