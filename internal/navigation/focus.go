package navigation

import (
	"time"

	"github.com/RacoonMediaServer/rms-catalog/internal/browse"
)

// FocusArea identifies which input surface owns the keyboard focus
type FocusArea int

const (
	AreaGrid FocusArea = iota
	AreaSearch
	AreaFilters
)

// Grid widths per layout breakpoint
const (
	wideRowSize   = 6
	narrowRowSize = 3
)

// Controller is the keyboard cursor state machine over the rendered grid.
// Navigation is synchronous: when it signals that more data is needed, the
// caller awaits the load itself.
type Controller struct {
	Focus int
	Area  FocusArea

	searchFocused bool
}

func NewController() *Controller {
	return &Controller{}
}

// Navigate processes one directional key. It returns true when the caller
// should fetch more items: either the cursor tried to move past the loaded
// end, or the target index already falls within the last loaded page.
func (c *Controller) Navigate(key string, itemCount int, reachedMax, filtersVisible, compactMode, narrowLayout bool, currentPage int) bool {
	switch key {
	case "Tab":
		c.cycleArea(1, filtersVisible)
		return false
	case "ShiftTab":
		c.cycleArea(-1, filtersVisible)
		return false
	}

	if c.Area != AreaGrid || itemCount == 0 {
		return false
	}

	row := wideRowSize
	if narrowLayout {
		row = narrowRowSize
	}
	_ = compactMode // affects the filter bar only, not the grid geometry

	next := c.Focus
	switch key {
	case "ArrowLeft":
		next--
	case "ArrowRight":
		next++
	case "ArrowUp":
		next -= row
	case "ArrowDown":
		next += row
	default:
		return false
	}

	if next < 0 {
		c.Focus = 0
		return false
	}

	if next >= itemCount {
		if !reachedMax {
			// stay put until the next page arrives
			return true
		}
		c.Focus = itemCount - 1
		return false
	}

	c.Focus = next
	// prefetch when the cursor lands inside the last loaded page
	return !reachedMax && next >= (currentPage-1)*browse.PageSize
}

func (c *Controller) cycleArea(dir int, filtersVisible bool) {
	areas := 2
	if filtersVisible {
		areas = 3
	}
	c.Area = FocusArea((int(c.Area) + dir + areas) % areas)
	c.searchFocused = c.Area == AreaSearch
}

// FocusSearch moves keyboard focus into the search bar, suppressing grid
// navigation until it is released.
func (c *Controller) FocusSearch() {
	c.Area = AreaSearch
	c.searchFocused = true
}

func (c *Controller) IsSearchFocused() bool {
	return c.searchFocused
}

// SelectFirstChannel re-anchors the cursor on the first grid item.
func (c *Controller) SelectFirstChannel() {
	c.Focus = 0
	c.Area = AreaGrid
	c.searchFocused = false
}

// SelectFirstChannelDelayed re-anchors after a settle delay, letting a just
// triggered reload finish rendering first. The delay is a pragmatic debounce,
// not a hard guarantee.
func (c *Controller) SelectFirstChannelDelayed(d time.Duration) {
	time.AfterFunc(d, c.SelectFirstChannel)
}
