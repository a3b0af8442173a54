package model

// SourceType describes where a playlist came from
type SourceType int32

const (
	SourceTypeM3U SourceType = iota
	SourceTypeCustom
	SourceTypeXtream
)

// Source is a configured playlist provider
type Source struct {
	ID      int64 `bson:"_id,omitempty"`
	Name    string
	Type    SourceType
	Enabled bool
}
