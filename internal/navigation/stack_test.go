package navigation

import (
	"testing"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	assert.False(t, s.HasNodes())
	assert.Nil(t, s.Pop())

	mode := model.ViewModeAll
	s.Push(&Node{ID: 1, DisplayName: "UK Sports", Type: NodeCategory, PriorQuery: "sports", PriorViewMode: &mode})
	s.Push(&Node{ID: 2, DisplayName: "Top Gear", Type: NodeSeries})

	assert.True(t, s.HasNodes())
	assert.Equal(t, []string{"UK Sports", "Top Gear"}, s.Path())

	n := s.Pop()
	require.NotNil(t, n)
	assert.Equal(t, NodeSeries, n.Type)
	assert.Equal(t, int64(2), n.ID)

	n = s.Pop()
	require.NotNil(t, n)
	assert.Equal(t, "sports", n.PriorQuery)
	require.NotNil(t, n.PriorViewMode)
	assert.Equal(t, model.ViewModeAll, *n.PriorViewMode)
	assert.False(t, s.HasNodes())
}

func TestStackPeekAndClear(t *testing.T) {
	s := NewStack()
	s.Push(&Node{ID: 1, Type: NodeSeries})
	s.Push(&Node{ID: 2, Type: NodeSeason})

	top := s.Peek()
	require.NotNil(t, top)
	assert.Equal(t, NodeSeason, top.Type)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.False(t, s.HasNodes())
	assert.Nil(t, s.Peek())
}
