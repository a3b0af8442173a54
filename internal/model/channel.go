package model

import "time"

// MediaType classifies a catalog item
type MediaType int32

const (
	MediaTypeLivestream MediaType = iota
	MediaTypeMovie
	MediaTypeSerie
	MediaTypeGroup
	MediaTypeSeason
)

// PrimaryMediaTypes are the types a user can search across directly
var PrimaryMediaTypes = []MediaType{MediaTypeLivestream, MediaTypeMovie, MediaTypeSerie}

// Channel represents a single catalog item: a live stream, a movie, a series,
// a category group or a season entry
type Channel struct {
	ID        int64 `bson:"_id,omitempty"`
	Name      string
	URL       string
	Image     string
	MediaType MediaType
	SourceID  int64

	// Scope parents, filled depending on MediaType
	GroupID  *int64
	SeriesID *int64
	SeasonID *int64

	Favorite    bool
	Hidden      bool
	Whitelisted bool

	Genres      []string
	Rating      float32
	LastWatched time.Time
}

func (c *Channel) IsDrillable() bool {
	switch c.MediaType {
	case MediaTypeGroup, MediaTypeSerie, MediaTypeSeason:
		return true
	}
	return false
}
