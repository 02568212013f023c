package worker_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/transport"
	"github.com/vytor/dsaportal/internal/worker"
)

type funcJob struct {
	name string
	fn   func(context.Context) error
}

func (j funcJob) Name() string                  { return j.name }
func (j funcJob) Run(ctx context.Context) error { return j.fn(ctx) }

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := worker.NewPool(2, 8)
	pool.Start(context.Background())

	var ran int32
	for i := 0; i < 5; i++ {
		require.NoError(t, pool.Submit(funcJob{name: "count", fn: func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		}}))
	}
	pool.Stop()

	assert.Equal(t, int32(5), atomic.LoadInt32(&ran))
}

func TestPool_SubmitWhenFull(t *testing.T) {
	pool := worker.NewPool(1, 1)
	release := make(chan struct{})
	started := make(chan struct{})
	pool.Start(context.Background())
	defer func() {
		close(release)
		pool.Stop()
	}()

	require.NoError(t, pool.Submit(funcJob{name: "block", fn: func(context.Context) error {
		close(started)
		<-release
		return nil
	}}))
	<-started

	require.NoError(t, pool.Submit(funcJob{name: "queued", fn: func(context.Context) error { return nil }}))
	err := pool.Submit(funcJob{name: "overflow", fn: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, worker.ErrQueueFull)
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	err := pool.Submit(funcJob{name: "late", fn: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, worker.ErrPoolStopped)
}

func TestPool_SurvivesPanickingJob(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start(context.Background())

	var ok int32
	require.NoError(t, pool.Submit(funcJob{name: "panic", fn: func(context.Context) error { panic("boom") }}))
	require.NoError(t, pool.Submit(funcJob{name: "after", fn: func(context.Context) error {
		atomic.StoreInt32(&ok, 1)
		return nil
	}}))
	pool.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&ok))
}

type fakePusher struct {
	mu      sync.Mutex
	updates []models.ProgressUpdate
	err     error
}

func (f *fakePusher) PushProgress(_ context.Context, u models.ProgressUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, u)
	return f.err
}

type fakeRecorder struct {
	recs []models.SyncRecord
}

func (f *fakeRecorder) Record(_ context.Context, rec models.SyncRecord) (int64, error) {
	f.recs = append(f.recs, rec)
	return int64(len(f.recs)), nil
}

func TestPushProgressJob_RecordsOutcome(t *testing.T) {
	update := models.ProgressUpdate{ProblemID: "p1", Status: models.ProgressSolved, At: time.Now()}

	pusher := &fakePusher{}
	rec := &fakeRecorder{}
	job := &worker.PushProgressJob{Users: pusher, Log: rec, IdentityID: "u1", Update: update}
	require.NoError(t, job.Run(context.Background()))
	require.Len(t, rec.recs, 1)
	assert.Equal(t, models.SyncPushed, rec.recs[0].Outcome)
	assert.Equal(t, "u1", rec.recs[0].IdentityID)

	pusher.err = errors.New("status 500")
	err := job.Run(context.Background())
	require.Error(t, err)
	require.Len(t, rec.recs, 2)
	assert.Equal(t, models.SyncFailed, rec.recs[1].Outcome)
	assert.Equal(t, "status 500", rec.recs[1].Error)
	assert.Len(t, pusher.updates, 2)
}

func TestPushProgressJob_WithoutRecorder(t *testing.T) {
	job := &worker.PushProgressJob{Users: &fakePusher{}, Update: models.ProgressUpdate{ProblemID: "p1"}}
	assert.NoError(t, job.Run(context.Background()))
	assert.Equal(t, "push_progress", job.Name())
}

type liveToken string

func (l liveToken) Token() string { return string(l) }

type tokenPusher struct {
	seen string
}

func (p *tokenPusher) PushProgress(ctx context.Context, _ models.ProgressUpdate) error {
	p.seen = transport.ResolveToken(ctx, liveToken("tok-live"))
	return nil
}

func TestPushProgressJob_OverridesLiveToken(t *testing.T) {
	pusher := &tokenPusher{}
	job := &worker.PushProgressJob{Users: pusher, IdentityID: "u1", Token: "tok-queued", Update: models.ProgressUpdate{ProblemID: "p1"}}

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, "tok-queued", pusher.seen)
}
