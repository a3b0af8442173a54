package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/browse"
	"github.com/RacoonMediaServer/rms-catalog/internal/cluster"
	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/lock"
	"github.com/RacoonMediaServer/rms-catalog/internal/navigation"
	"github.com/RacoonMediaServer/rms-catalog/internal/schedule"
	"github.com/RacoonMediaServer/rms-catalog/internal/selection"
	"github.com/google/uuid"
	"go-micro.dev/v4/logger"
)

// ErrSessionNotFound is returned for unknown or already closed session ids.
var ErrSessionNotFound = errors.New("session not found")

const refreshTaskGroup = "refresh"

// Settings holds all dependencies of the session manager
type Settings struct {
	Catalog     Catalog
	Provisioner Provisioner
	Notifier    Notifier
	Scheduler   *schedule.Scheduler
}

// Manager owns the live browse sessions and the shared background refresh.
type Manager struct {
	catalog     Catalog
	provisioner Provisioner
	notifier    Notifier
	scheduler   *schedule.Scheduler
	locker      lock.Locker

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(settings Settings) *Manager {
	return &Manager{
		catalog:     settings.Catalog,
		provisioner: settings.Provisioner,
		notifier:    settings.Notifier,
		scheduler:   settings.Scheduler,
		locker:      lock.NewLocker(),
		sessions:    map[string]*Session{},
	}
}

// Open creates a fresh session scoped to the enabled sources. When the
// persisted settings ask for it, sources are re-imported before the caller
// gets to load anything.
func (m *Manager) Open(ctx context.Context) (*Session, error) {
	sources, err := m.catalog.EnabledSources(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := m.catalog.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(sources))
	for _, src := range sources {
		ids = append(ids, src.ID)
	}

	loader := browse.NewLoader(browse.Settings{
		Catalog:        m.catalog,
		Provisioner:    m.provisioner,
		SettingsStore:  m.catalog,
		Notifier:       m.notifier,
		EnabledSources: len(ids),
	})

	s := &Session{
		ID:         uuid.New().String(),
		Filters:    filters.New(ids, settings.DefaultSort),
		Loader:     loader,
		Nav:        navigation.NewStack(),
		Focus:      navigation.NewController(),
		Selection:  selection.NewCoordinator(m.catalog, m.notifier),
		Categories: cluster.NewManager(m.catalog, m.notifier, ids),
		catalog:    m.catalog,
		sources:    ids,
	}

	if reason, ok := ShouldRefresh(&s.startup, settings, time.Now()); ok {
		if err := loader.RefreshAll(ctx, reason); err != nil {
			logger.Warnf("Startup refresh failed: %s", err)
		}
		s.startup.RefreshedOnStart = true
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Lock serializes operations of one session. The returned unlocker must be
// released by the caller.
func (m *Manager) Lock(ctx context.Context, id string) (lock.Unlocker, error) {
	return m.locker.ContextLock(ctx, id)
}

// Invalidate marks every live session stale, forcing a fresh load on the
// next access. Called when the catalog content changed underneath.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		s.MarkStale()
	}
}

// StartBackgroundRefresh schedules a periodic full re-import of all sources.
func (m *Manager) StartBackgroundRefresh(interval time.Duration) {
	if m.scheduler == nil || interval <= 0 {
		return
	}

	task := schedule.Task{
		Group: refreshTaskGroup,
		Fn:    m.refreshTask,
	}
	m.scheduler.Add(task.After(interval).Every(interval))
}

func (m *Manager) refreshTask(ctx context.Context) schedule.Result {
	logger.Info("Refreshing all sources...")

	if err := m.provisioner.RefreshAllSources(ctx); err != nil {
		logger.Errorf("Refresh sources failed: %s", err)
		return schedule.Result{Result: schedule.OpResultRetry}
	}

	if err := m.catalog.UpdateLastRefresh(ctx, time.Now()); err != nil {
		logger.Warnf("Store last refresh time failed: %s", err)
	}

	m.Invalidate()
	logger.Info("Refresh complete")
	return schedule.Result{Result: schedule.OpResultDone}
}
