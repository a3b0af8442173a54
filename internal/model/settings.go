package model

import "time"

// Settings is the persisted part of the catalog configuration, read once at
// session start to decide whether sources should be refreshed
type Settings struct {
	ID                   string `bson:"_id,omitempty"`
	LastRefresh          time.Time
	RefreshIntervalHours int
	RefreshOnStart       bool
	DefaultSort          SortType
}
