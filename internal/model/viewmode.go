package model

// ViewMode selects which slice of the catalog is browsed
type ViewMode int32

const (
	ViewModeAll ViewMode = iota
	ViewModeCategories
	ViewModeFavorites
	ViewModeHistory
	ViewModeHidden
)

func (m ViewMode) String() string {
	switch m {
	case ViewModeAll:
		return "all"
	case ViewModeCategories:
		return "categories"
	case ViewModeFavorites:
		return "favorites"
	case ViewModeHistory:
		return "history"
	case ViewModeHidden:
		return "hidden"
	}
	return "unknown"
}

// SortType selects the ordering strategy applied to fetched pages
type SortType int32

const (
	SortProvider SortType = iota
	SortAlphabetical
	SortLastWatched
)
