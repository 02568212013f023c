package jobs

import (
	"time"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/worker"
)

// WorkerQueue implements ProgressQueue using a worker pool
type WorkerQueue struct {
	pool  *worker.Pool
	users worker.ProgressPusher
	log   worker.SyncRecorder
	now   func() time.Time
}

// NewWorkerQueue creates a new WorkerQueue. syncLog may be nil.
func NewWorkerQueue(pool *worker.Pool, users worker.ProgressPusher, syncLog worker.SyncRecorder) ProgressQueue {
	return &WorkerQueue{
		pool:  pool,
		users: users,
		log:   syncLog,
		now:   time.Now,
	}
}

func (q *WorkerQueue) EnqueueProgress(push ProgressPush) error {
	if push.ProblemID == "" {
		return errors.NewValidationError("problemId", "cannot be empty")
	}
	if push.Token == "" {
		return errors.NewValidationError("token", "cannot be empty")
	}
	switch push.Status {
	case models.ProgressSolved, models.ProgressAttempted:
	default:
		return errors.NewValidationError("status", "must be solved or attempted")
	}

	return q.pool.Submit(&worker.PushProgressJob{
		Users:      q.users,
		Log:        q.log,
		IdentityID: push.IdentityID,
		Token:      push.Token,
		Update: models.ProgressUpdate{
			ProblemID: push.ProblemID,
			Status:    push.Status,
			At:        q.now().UTC(),
		},
	})
}
