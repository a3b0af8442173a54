package cluster

import (
	"regexp"
	"sort"
	"strings"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
)

// Status summarizes the visibility of a family
type Status int

const (
	StatusAllVisible Status = iota
	StatusNoneVisible
	StatusPartial
)

// Child is one category inside a family, a local view over the catalog item.
// Hidden is mutated only as a mirror of a confirmed remote change.
type Child struct {
	ID     int64
	Name   string
	Hidden bool
}

// Family is a derived cluster of categories sharing an inferred name prefix.
// Families are recomputed on every pass and carry no identity across passes:
// Selected and Expanded are re-applied by prefix equality.
type Family struct {
	Prefix      string
	Children    []*Child
	TotalCount  int
	HiddenCount int
	Status      Status
	Selected    bool
	Expanded    bool
}

// OtherPrefix is the catch-all bucket for names without a usable prefix
const OtherPrefix = "OTHER"

// Matches "[UK] News", "UK: Sports", "UK - Movies", "UK|VIP" and the like
var prefixPattern = regexp.MustCompile(`^([\[(]?[\w\s]{2,8}[\])]?[:| \-]*)`)

// Extracted prefixes of this length pass validation
const (
	minPrefixLen = 2
	maxPrefixLen = 6
)

// Longer prefixes accepted verbatim
var reservedPrefixes = map[string]struct{}{
	"GENERAL": {},
	"VIP":     {},
	"4K":      {},
}

// Prefixes shown before everything else, in this order
var priorityPrefixes = []string{"US", "USA", "UK", "GB", "CA", "CAN", "AU", "NZ"}

var prefixCleaner = strings.NewReplacer("[", "", "]", "", "(", "", ")", "", ":", "", "|", "", "-", "")

// inferPrefix extracts the family prefix from a category name, falling back
// to the catch-all bucket.
func inferPrefix(name string) string {
	match := prefixPattern.FindStringSubmatch(name)
	if match == nil || match[1] == "" {
		return OtherPrefix
	}

	raw := strings.ToUpper(strings.TrimSpace(prefixCleaner.Replace(match[1])))
	if len(raw) >= minPrefixLen && len(raw) <= maxPrefixLen {
		return raw
	}
	if _, reserved := reservedPrefixes[raw]; reserved {
		return raw
	}
	// the greedy candidate may swallow part of the next word ("VIP Room"
	// extracts "VIP ROOM"): reserved literals still win by first token
	if token, _, found := strings.Cut(raw, " "); found {
		if _, reserved := reservedPrefixes[token]; reserved {
			return token
		}
	}
	return OtherPrefix
}

func priorityIndex(prefix string) int {
	for i, p := range priorityPrefixes {
		if p == prefix {
			return i
		}
	}
	return -1
}

// Cluster groups a flat category list into families by inferred prefix.
// Categories are filtered by a case-insensitive substring query first; a
// non-empty query also auto-expands every family.
func Cluster(categories []*model.Channel, query string) []*Family {
	query = strings.ToLower(query)
	families := map[string]*Family{}

	for _, cat := range categories {
		if query != "" && !strings.Contains(strings.ToLower(cat.Name), query) {
			continue
		}

		prefix := inferPrefix(cat.Name)
		f, ok := families[prefix]
		if !ok {
			f = &Family{Prefix: prefix, Expanded: query != ""}
			families[prefix] = f
		}
		f.Children = append(f.Children, &Child{ID: cat.ID, Name: cat.Name, Hidden: cat.Hidden})
	}

	result := make([]*Family, 0, len(families))
	for _, f := range families {
		sort.Slice(f.Children, func(i, j int) bool {
			return f.Children[i].Name < f.Children[j].Name
		})
		f.recompute()
		result = append(result, f)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := priorityIndex(result[i].Prefix), priorityIndex(result[j].Prefix)
		switch {
		case a != -1 && b != -1:
			return a < b
		case a != -1:
			return true
		case b != -1:
			return false
		}
		return result[i].Prefix < result[j].Prefix
	})

	return result
}

// recompute refreshes the counters and status from the children.
func (f *Family) recompute() {
	f.TotalCount = len(f.Children)
	f.HiddenCount = 0
	for _, c := range f.Children {
		if c.Hidden {
			f.HiddenCount++
		}
	}

	switch f.HiddenCount {
	case f.TotalCount:
		f.Status = StatusNoneVisible
	case 0:
		f.Status = StatusAllVisible
	default:
		f.Status = StatusPartial
	}
}

// ChildIDs returns the catalog ids of every child in the family.
func (f *Family) ChildIDs() []int64 {
	ids := make([]int64, len(f.Children))
	for i, c := range f.Children {
		ids[i] = c.ID
	}
	return ids
}
