package cluster

import (
	"context"
	"errors"
	"fmt"

	"github.com/RacoonMediaServer/rms-catalog/internal/filters"
	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"go-micro.dev/v4/logger"
)

// ErrFamilyNotFound is returned when a prefix does not match a known family
var ErrFamilyNotFound = errors.New("family not found")

// Manager runs a category management session: it keeps the raw category list,
// the derived families, and executes bulk visibility operations against the
// catalog. Local state mirrors remote changes only after they are confirmed;
// a failed bulk call leaves everything untouched.
type Manager struct {
	catalog  Catalog
	notifier Notifier
	sources  []int64

	categories []*model.Channel
	families   []*Family
	query      string

	// UI flags survive regeneration through prefix-keyed side maps
	selected map[string]bool
	expanded map[string]bool

	dirty bool
}

func NewManager(catalog Catalog, notifier Notifier, sourceIDs []int64) *Manager {
	return &Manager{
		catalog:  catalog,
		notifier: notifier,
		sources:  sourceIDs,
		selected: map[string]bool{},
		expanded: map[string]bool{},
	}
}

// managementFilters builds the unpaginated hidden-inclusive category query.
func (m *Manager) managementFilters() *filters.State {
	f := filters.New(m.sources, model.SortProvider)
	f.SwitchViewMode(model.ViewModeCategories)
	f.SetMediaTypes(model.PrimaryMediaTypes)
	f.ShowHidden = true
	f.Page = 0 // no pagination for management
	return f
}

// Load fetches every category, hidden ones included, and regroups.
func (m *Manager) Load(ctx context.Context) error {
	categories, err := m.catalog.Search(ctx, m.managementFilters())
	if err != nil {
		m.notifier.Error("Failed to load categories")
		return fmt.Errorf("load categories failed: %w", err)
	}

	m.categories = categories
	m.regroup()
	return nil
}

// SetQuery filters the category list and regroups.
func (m *Manager) SetQuery(query string) {
	m.query = query
	m.regroup()
}

func (m *Manager) regroup() {
	m.families = Cluster(m.categories, m.query)
	for _, f := range m.families {
		if m.selected[f.Prefix] {
			f.Selected = true
		}
		if expanded, ok := m.expanded[f.Prefix]; ok {
			f.Expanded = expanded
		}
	}
}

func (m *Manager) Families() []*Family { return m.families }
func (m *Manager) Query() string       { return m.query }

// Dirty reports whether any visibility changed since the session started, so
// the caller knows to reload the authoritative view afterwards.
func (m *Manager) Dirty() bool { return m.dirty }

func (m *Manager) family(prefix string) *Family {
	for _, f := range m.families {
		if f.Prefix == prefix {
			return f
		}
	}
	return nil
}

// ToggleSelected flips the bulk-selection mark of a family.
func (m *Manager) ToggleSelected(prefix string) {
	f := m.family(prefix)
	if f == nil {
		return
	}
	f.Selected = !f.Selected
	m.selected[prefix] = f.Selected
}

// ToggleExpanded flips the disclosure state of a family.
func (m *Manager) ToggleExpanded(prefix string) {
	f := m.family(prefix)
	if f == nil {
		return
	}
	f.Expanded = !f.Expanded
	m.expanded[prefix] = f.Expanded
}

// SelectedFamilies returns the families currently marked for bulk actions.
func (m *Manager) SelectedFamilies() []*Family {
	var result []*Family
	for _, f := range m.families {
		if f.Selected {
			result = append(result, f)
		}
	}
	return result
}

// ToggleFamily hides a fully visible family and shows it in every other
// state. The local mirror flips only after the remote call is confirmed.
func (m *Manager) ToggleFamily(ctx context.Context, prefix string) error {
	f := m.family(prefix)
	if f == nil {
		return ErrFamilyNotFound
	}

	hide := f.Status == StatusAllVisible
	logger.Debugf("Toggle family %s: hide=%t, %d items", prefix, hide, f.TotalCount)

	if err := m.catalog.BulkSetHidden(ctx, f.ChildIDs(), hide); err != nil {
		m.notifier.Error(fmt.Sprintf("Failed to toggle family %s", prefix))
		return fmt.Errorf("toggle family failed: %w", err)
	}

	for _, c := range f.Children {
		c.Hidden = hide
	}
	m.mirrorCategories(f.ChildIDs(), hide)
	f.recompute()
	m.dirty = true
	return nil
}

// ToggleSubCategory flips a single child and recomputes its family.
func (m *Manager) ToggleSubCategory(ctx context.Context, prefix string, id int64) error {
	f := m.family(prefix)
	if f == nil {
		return ErrFamilyNotFound
	}

	var child *Child
	for _, c := range f.Children {
		if c.ID == id {
			child = c
			break
		}
	}
	if child == nil {
		return fmt.Errorf("category %d not found in family %s", id, prefix)
	}

	hide := !child.Hidden
	if err := m.catalog.BulkSetHidden(ctx, []int64{id}, hide); err != nil {
		m.notifier.Error(fmt.Sprintf("Failed to toggle %s", child.Name))
		return fmt.Errorf("toggle category failed: %w", err)
	}

	child.Hidden = hide
	m.mirrorCategories([]int64{id}, hide)
	f.recompute()
	m.dirty = true
	return nil
}

// FocusMode hides every known category, then unhides only the selected
// families. The two bulk calls must run in that order: the catalog has no
// atomic "set exactly these" primitive.
func (m *Manager) FocusMode(ctx context.Context) error {
	selected := m.SelectedFamilies()
	if len(selected) == 0 {
		return nil
	}

	all := make([]int64, 0, len(m.categories))
	for _, c := range m.categories {
		all = append(all, c.ID)
	}
	if err := m.catalog.BulkSetHidden(ctx, all, true); err != nil {
		m.notifier.Error("Focus mode failed")
		return fmt.Errorf("hide all categories failed: %w", err)
	}

	keep := make([]int64, 0)
	for _, f := range selected {
		keep = append(keep, f.ChildIDs()...)
	}
	if err := m.catalog.BulkSetHidden(ctx, keep, false); err != nil {
		m.notifier.Error("Focus mode failed")
		return fmt.Errorf("unhide selected categories failed: %w", err)
	}

	m.mirrorCategories(all, true)
	m.mirrorCategories(keep, false)
	m.regroup()
	m.dirty = true
	m.notifier.Success(fmt.Sprintf("Focused %d families", len(selected)))
	return nil
}

// ApplyBulkGlobal sets the hidden flag on every category across all families
// in one call.
func (m *Manager) ApplyBulkGlobal(ctx context.Context, hidden bool) error {
	ids := make([]int64, 0)
	for _, f := range m.families {
		ids = append(ids, f.ChildIDs()...)
	}
	if len(ids) == 0 {
		return nil
	}

	if err := m.catalog.BulkSetHidden(ctx, ids, hidden); err != nil {
		m.notifier.Error("Bulk action failed")
		return fmt.Errorf("bulk visibility update failed: %w", err)
	}

	m.mirrorCategories(ids, hidden)
	m.regroup()
	m.dirty = true
	return nil
}

// mirrorCategories applies a confirmed remote change to the raw list so the
// next regroup sees it.
func (m *Manager) mirrorCategories(ids []int64, hidden bool) {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	for _, c := range m.categories {
		if _, ok := set[c.ID]; ok {
			c.Hidden = hidden
		}
	}
}
