package model

// MetaInfo tracks the service and schema versions of the stored catalog
type MetaInfo struct {
	ID              string `bson:"_id,omitempty"`
	Version         string
	DatabaseVersion uint
}
