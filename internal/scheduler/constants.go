package scheduler

import (
	"errors"
	"time"
)

// Default intervals
const (
	DefaultTickInterval     = time.Second
	DefaultAutosaveInterval = 30 * time.Second
)

// Log messages
const (
	LogMsgSchedulerStarted  = "Scheduler started"
	LogMsgSchedulerStopped  = "Scheduler stopped"
	LogMsgAutosaveSkipped   = "Autosave skipped, save queue full"
	LogMsgFinalSaveFailed   = "Final save failed"
	LogMsgAchievementEarned = "Achievement unlocked"
)

// ErrStopped is returned by Do once the loop has exited
var ErrStopped = errors.New("scheduler stopped")
