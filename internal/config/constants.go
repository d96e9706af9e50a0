package config

import "time"

// Save backends
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendGdata  = "gdata"
	BackendSQLite = "sqlite"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultSaveDir          = "saves"
	DefaultSQLitePath       = "saves/garden.db"
	DefaultGdataAppName     = "garden_idle"
	DefaultTickInterval     = time.Second
	DefaultAutosaveInterval = 30 * time.Second
	DefaultSaveWorkers      = 1
)

// Error messages
const (
	ErrMsgParseEnv      = "parse environment: %w"
	ErrMsgInvalidConfig = "invalid configuration: %w"
	ErrMsgEnvFileLoad   = "load env file %s: %w"
)
