package worker

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/logger"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
)

// Saver persists a snapshot
type Saver interface {
	Save(ctx context.Context, snap persistence.Snapshot) error
}

// SaveJob writes one snapshot off the simulation goroutine and reports the
// result on the bus.
type SaveJob struct {
	saver Saver
	snap  persistence.Snapshot
	bus   event.Bus
	done  chan error
}

// NewSaveJob creates a save job. bus may be nil.
func NewSaveJob(saver Saver, snap persistence.Snapshot, bus event.Bus) *SaveJob {
	return &SaveJob{
		saver: saver,
		snap:  snap,
		bus:   bus,
		done:  make(chan error, 1),
	}
}

// Process saves the snapshot. A snapshot refused because a newer one was
// already written is not a failure: the job completes with a nil result and
// no save event.
func (j *SaveJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	start := time.Now()

	err := j.saver.Save(ctx, j.snap)
	took := time.Since(start)
	if errors.Is(err, domain.ErrStaleSnapshot) {
		log.Info(LogMsgSaveSuperseded, "save_id", j.snap.SaveID, "revision", j.snap.Revision)
		j.done <- nil
		return nil
	}
	if err != nil {
		log.Error(LogMsgSaveFailed, "save_id", j.snap.SaveID, "error", err)
	} else {
		log.Debug(LogMsgSaveCompleted, "save_id", j.snap.SaveID, "duration", took)
	}

	if j.bus != nil {
		if pubErr := j.bus.Publish(ctx, event.NewSaveEvent(j.snap.SaveID, took, err, time.Now())); pubErr != nil {
			log.Warn(LogMsgSaveEventPublishFailed, "error", pubErr)
		}
	}

	j.done <- err
	return err
}

// Done yields the save result once Process has run
func (j *SaveJob) Done() <-chan error {
	return j.done
}

// SaveID is the id of the snapshot being written
func (j *SaveJob) SaveID() string {
	return j.snap.SaveID
}
