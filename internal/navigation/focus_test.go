package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalMovement(t *testing.T) {
	c := NewController()

	load := c.Navigate("ArrowRight", 10, true, false, false, false, 1)
	assert.False(t, load)
	assert.Equal(t, 1, c.Focus)

	c.Navigate("ArrowLeft", 10, true, false, false, false, 1)
	assert.Equal(t, 0, c.Focus)

	// clamp at the first item
	c.Navigate("ArrowLeft", 10, true, false, false, false, 1)
	assert.Equal(t, 0, c.Focus)
}

func TestVerticalMovementUsesRowSize(t *testing.T) {
	c := NewController()

	c.Navigate("ArrowDown", 20, true, false, false, false, 1)
	assert.Equal(t, 6, c.Focus)

	c.Navigate("ArrowUp", 20, true, false, false, false, 1)
	assert.Equal(t, 0, c.Focus)

	narrow := NewController()
	narrow.Navigate("ArrowDown", 20, true, false, false, true, 1)
	assert.Equal(t, 3, narrow.Focus)
}

func TestMovePastEndSignalsLoad(t *testing.T) {
	c := NewController()
	c.Focus = 9

	// more data exists: signal a load, keep the cursor in place
	load := c.Navigate("ArrowRight", 10, false, false, false, false, 1)
	assert.True(t, load)
	assert.Equal(t, 9, c.Focus)

	// at the end: clamp instead
	load = c.Navigate("ArrowRight", 10, true, false, false, false, 1)
	assert.False(t, load)
	assert.Equal(t, 9, c.Focus)
}

func TestPrefetchInsideLastPage(t *testing.T) {
	c := NewController()
	c.Focus = 35

	// second page is loaded, cursor moves into it: prefetch the next one
	load := c.Navigate("ArrowRight", 72, false, false, false, false, 2)
	assert.True(t, load)
	assert.Equal(t, 36, c.Focus)

	// still on the first page: no prefetch
	c.Focus = 10
	load = c.Navigate("ArrowRight", 72, false, false, false, false, 2)
	assert.False(t, load)
	assert.Equal(t, 11, c.Focus)
}

func TestTabCyclesAreas(t *testing.T) {
	c := NewController()
	assert.Equal(t, AreaGrid, c.Area)

	c.Navigate("Tab", 10, true, true, false, false, 1)
	assert.Equal(t, AreaSearch, c.Area)
	assert.True(t, c.IsSearchFocused())

	c.Navigate("Tab", 10, true, true, false, false, 1)
	assert.Equal(t, AreaFilters, c.Area)
	assert.False(t, c.IsSearchFocused())

	c.Navigate("Tab", 10, true, true, false, false, 1)
	assert.Equal(t, AreaGrid, c.Area)

	c.Navigate("ShiftTab", 10, true, true, false, false, 1)
	assert.Equal(t, AreaFilters, c.Area)

	// without the filter bar only search and grid cycle
	c2 := NewController()
	c2.Navigate("Tab", 10, true, false, false, false, 1)
	assert.Equal(t, AreaSearch, c2.Area)
	c2.Navigate("Tab", 10, true, false, false, false, 1)
	assert.Equal(t, AreaGrid, c2.Area)
}

func TestSearchFocusSuppressesGridMovement(t *testing.T) {
	c := NewController()
	c.FocusSearch()

	load := c.Navigate("ArrowDown", 10, true, false, false, false, 1)
	assert.False(t, load)
	assert.Equal(t, 0, c.Focus)

	c.SelectFirstChannel()
	assert.Equal(t, AreaGrid, c.Area)
	assert.False(t, c.IsSearchFocused())
}
