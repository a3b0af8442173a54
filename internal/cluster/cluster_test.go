package cluster

import (
	"testing"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func category(id int64, name string, hidden bool) *model.Channel {
	return &model.Channel{ID: id, Name: name, Hidden: hidden, MediaType: model.MediaTypeGroup}
}

func prefixes(families []*Family) []string {
	result := make([]string, len(families))
	for i, f := range families {
		result[i] = f.Prefix
	}
	return result
}

func TestInferPrefix(t *testing.T) {
	type testCase struct {
		name   string
		prefix string
	}

	testCases := []testCase{
		{name: "[UK] News", prefix: "UK"},
		{name: "UK: Sports", prefix: "UK"},
		{name: "UK - Movies", prefix: "UK"},
		{name: "UK|VIP", prefix: "UK"},
		{name: "(USA) Documentaries", prefix: "USA"},
		{name: "VIP Room", prefix: "VIP"},
		{name: "4K Cinema", prefix: "4K"},
		{name: "X", prefix: OtherPrefix},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.prefix, inferPrefix(tc.name), "name %q", tc.name)
	}
}

func TestClusterGrouping(t *testing.T) {
	categories := []*model.Channel{
		category(1, "[UK] News", false),
		category(2, "UK: Sports", false),
		category(3, "Random Channel 1", false),
		category(4, "VIP Room", false),
	}

	families := Cluster(categories, "")
	require.Len(t, families, 3)

	// "Random Channel 1" extracts "RANDOM C" which fails validation and
	// lands in the catch-all; UK is not in the priority list (the listed
	// literal is GB), so ordering falls back to alphabetical.
	assert.Equal(t, []string{OtherPrefix, "UK", "VIP"}, prefixes(families))

	uk := families[1]
	assert.Equal(t, 2, uk.TotalCount)
	assert.Equal(t, []string{"UK: Sports", "[UK] News"}, []string{uk.Children[0].Name, uk.Children[1].Name})
}

func TestClusterCatchAll(t *testing.T) {
	families := Cluster([]*model.Channel{category(1, "A", false)}, "")
	require.Len(t, families, 1)
	assert.Equal(t, OtherPrefix, families[0].Prefix)
}

func TestClusterPrioritySort(t *testing.T) {
	categories := []*model.Channel{
		category(1, "DE: Nachrichten", false),
		category(2, "US: News", false),
		category(3, "AU: Sports", false),
		category(4, "CA: Hockey", false),
	}

	families := Cluster(categories, "")
	assert.Equal(t, []string{"US", "CA", "AU", "DE"}, prefixes(families))
}

func TestClusterQueryFilterAndAutoExpand(t *testing.T) {
	categories := []*model.Channel{
		category(1, "[UK] News", false),
		category(2, "UK: Sports", false),
		category(3, "FR: Sport", false),
	}

	families := Cluster(categories, "sport")
	require.Len(t, families, 2)
	for _, f := range families {
		assert.True(t, f.Expanded)
		assert.Equal(t, 1, f.TotalCount)
	}

	families = Cluster(categories, "")
	for _, f := range families {
		assert.False(t, f.Expanded)
	}
}

func TestClusterStatus(t *testing.T) {
	categories := []*model.Channel{
		category(1, "UK: News", true),
		category(2, "UK: Sports", true),
		category(3, "FR: News", false),
		category(4, "DE: News", true),
		category(5, "DE: Sports", false),
	}

	families := Cluster(categories, "")
	byPrefix := map[string]*Family{}
	for _, f := range families {
		byPrefix[f.Prefix] = f
	}

	assert.Equal(t, StatusNoneVisible, byPrefix["UK"].Status)
	assert.Equal(t, 2, byPrefix["UK"].HiddenCount)
	assert.Equal(t, StatusAllVisible, byPrefix["FR"].Status)
	assert.Equal(t, StatusPartial, byPrefix["DE"].Status)
}
