package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0o644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGarden      = "Starting garden"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Catalog and Storage
// =============================================================================

const (
	LogMsgCatalogLoaded  = "Catalog loaded"
	LogMsgBackendOpened  = "Save backend opened"
	LogMsgSaveLoaded     = "Save loaded"
	LogMsgAPIUnprotected = "API_KEY is empty in a production environment; /api is unauthenticated"
	ErrMsgLoadCatalog    = "failed to load catalog"
	ErrMsgCreateSaveDir  = "failed to create save directory"
	ErrMsgOpenBackend    = "failed to open save backend"
	ErrMsgUnknownBackend = "unknown save backend %q"

	// CatalogSourceBuiltin labels the compiled-in catalog in logs
	CatalogSourceBuiltin = "builtin"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDeadLetterFile is the dead-letter file name, created in the save directory
	EventDeadLetterFile = "event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgGardenJournalRegistered        = "Garden journal registered"
	LogMsgJournalPrestige                = "Garden prestiged"
	LogMsgJournalReset                   = "Garden reset"
	LogMsgJournalAchievement             = "Achievement unlocked"
	LogMsgJournalOffline                 = "Offline growth credited"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgStoppingEventStream        = "Closing event streams..."
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgStoppingScheduler          = "Stopping scheduler and writing final save..."
	LogMsgShuttingDownSavePool       = "Shutting down save pool..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgSchedulerStopFailed        = "Scheduler stop failed"
	LogMsgSavePoolShutdownFailed     = "Save pool shutdown failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgCloseFailed                = "Closing resource failed"
)
