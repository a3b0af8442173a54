package config

import "github.com/RacoonMediaServer/rms-packages/pkg/configuration"

// Refresh controls periodic re-import of the configured sources
type Refresh struct {
	// IntervalHours between background refreshes, 0 disables them
	IntervalHours int `json:"interval-hours"`

	// OnStart forces a refresh when a session opens and content is stale
	OnStart bool `json:"on-start"`
}

// Ingest is settings for connection to the content ingest service
type Ingest struct {
	// Service name in the registry
	Service string

	// Timeout of a full re-import, seconds
	Timeout int
}

// Configuration represents entire service configuration
type Configuration struct {
	// MongoDB connection string
	Database string

	Refresh Refresh

	Ingest Ingest
}

var config Configuration

// Load open and parses configuration file
func Load(configFilePath string) error {
	return configuration.Load(configFilePath, &config)
}

// Config returns loaded configuration
func Config() Configuration {
	return config
}
