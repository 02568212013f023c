package worker

import (
	"context"
	"time"

	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/transport"
)

// ProgressPusher is the slice of the users gateway a push job needs.
type ProgressPusher interface {
	PushProgress(ctx context.Context, update models.ProgressUpdate) error
}

// SyncRecorder stores the outcome of each push attempt.
type SyncRecorder interface {
	Record(ctx context.Context, rec models.SyncRecord) (int64, error)
}

// PushProgressJob sends one progress update to POST /users/progress. It is not retried.
// The request carries Token, never the live session token.
type PushProgressJob struct {
	Users      ProgressPusher
	Log        SyncRecorder
	IdentityID string
	Token      string
	Update     models.ProgressUpdate
}

func (j *PushProgressJob) Name() string { return "push_progress" }

func (j *PushProgressJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"problem_id": j.Update.ProblemID,
		"status":     j.Update.Status,
	})

	err := j.Users.PushProgress(transport.ContextWithToken(ctx, j.Token), j.Update)

	if j.Log != nil {
		rec := models.SyncRecord{
			IdentityID:  j.IdentityID,
			ProblemID:   j.Update.ProblemID,
			Status:      j.Update.Status,
			Outcome:     models.SyncPushed,
			AttemptedAt: time.Now().UTC(),
		}
		if err != nil {
			rec.Outcome = models.SyncFailed
			rec.Error = err.Error()
		}
		// Recorded even when ctx is already cancelled.
		if _, recErr := j.Log.Record(context.WithoutCancel(ctx), rec); recErr != nil {
			log.Warn("failed to record sync attempt: %v", recErr)
		}
	}

	if err != nil {
		return err
	}
	log.Debug("progress pushed")
	return nil
}
