package worker

import "errors"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed     = "Worker job failed"
	LogMsgPoolShuttingDown    = "Worker pool shutting down"
	LogMsgPoolShutdownDone    = "Worker pool shutdown complete"
	LogMsgPoolShutdownTimeout = "Worker pool shutdown timeout"
)

// ============================================================================
// Log Messages - Save Job
// ============================================================================

// Log messages for save jobs
const (
	LogMsgSaveCompleted          = "Garden saved"
	LogMsgSaveFailed             = "Garden save failed"
	LogMsgSaveSuperseded         = "Garden save skipped, a newer save was already written"
	LogMsgSaveEventPublishFailed = "Save event publish failed"
)

// ErrPoolStopped is returned when enqueueing onto a pool that has been shut down
var ErrPoolStopped = errors.New("worker pool stopped")
