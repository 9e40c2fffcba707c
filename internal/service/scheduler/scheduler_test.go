package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	mu    sync.Mutex
	fired []string
	fire  func(ctx context.Context, job domain.ScheduledJob) error
}

func (h *recordingHandler) Fire(ctx context.Context, job domain.ScheduledJob) error {
	h.mu.Lock()
	h.fired = append(h.fired, job.ID)
	h.mu.Unlock()
	if h.fire != nil {
		return h.fire(ctx, job)
	}
	return nil
}

func (h *recordingHandler) Fired() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.fired...)
}

var t0 = time.Date(2026, time.March, 9, 8, 0, 0, 0, time.Local)

func newJob(id string, fireAt time.Time) domain.ScheduledJob {
	return domain.ScheduledJob{
		ID:           id,
		FireAt:       fireAt,
		Recipients:   []domain.Recipient{{Name: "Ann", Phone: "1001"}},
		Message:      "Hi {name}",
		CampaignName: "c-" + id,
	}
}

func TestJobQueue_Enqueue(t *testing.T) {
	t.Parallel()
	q := NewJobQueue()

	job, err := q.Enqueue(domain.ScheduledJob{FireAt: t0, Message: "m"})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.False(t, job.CreatedAt.IsZero())

	_, err = q.Enqueue(domain.ScheduledJob{ID: job.ID, FireAt: t0})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	other, err := q.Enqueue(domain.ScheduledJob{FireAt: t0})
	require.NoError(t, err)
	assert.NotEqual(t, job.ID, other.ID)
	assert.Len(t, q.Pending(), 2)
}

func TestJobQueue_PendingOrderedByFireAt(t *testing.T) {
	t.Parallel()
	q := NewJobQueue()
	for _, j := range []domain.ScheduledJob{
		newJob("c", t0.Add(3*time.Hour)),
		newJob("a", t0.Add(time.Hour)),
		newJob("b", t0.Add(2*time.Hour)),
	} {
		_, err := q.Enqueue(j)
		require.NoError(t, err)
	}
	ids := make([]string, 0, 3)
	for _, j := range q.Pending() {
		ids = append(ids, j.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestJobQueue_Cancel(t *testing.T) {
	t.Parallel()
	q := NewJobQueue()
	_, err := q.Enqueue(newJob("a", t0))
	require.NoError(t, err)

	assert.ErrorIs(t, q.Cancel("missing"), errs.ErrJobNotFound)
	require.NoError(t, q.Cancel("a"))
	assert.Empty(t, q.Pending())
	assert.ErrorIs(t, q.Cancel("a"), errs.ErrJobNotFound)
}

func TestScheduler_ScheduleThenSweep(t *testing.T) {
	t.Parallel()
	q := NewJobQueue()
	h := &recordingHandler{}
	s := NewScheduler(q, h)
	ctx := context.Background()

	_, err := q.Enqueue(newJob("a", t0.Add(time.Hour)))
	require.NoError(t, err)

	require.NoError(t, s.Sweep(ctx, t0))
	assert.Empty(t, h.Fired())
	assert.Len(t, q.Pending(), 1)

	require.NoError(t, s.Sweep(ctx, t0.Add(time.Hour)))
	assert.Equal(t, []string{"a"}, h.Fired())
	assert.Empty(t, q.Pending())

	require.NoError(t, s.Sweep(ctx, t0.Add(2*time.Hour)))
	assert.Equal(t, []string{"a"}, h.Fired())
}

func TestScheduler_SweepFiresInFireAtOrder(t *testing.T) {
	t.Parallel()
	q := NewJobQueue()
	h := &recordingHandler{}
	s := NewScheduler(q, h)

	for _, j := range []domain.ScheduledJob{
		newJob("late", t0.Add(-time.Minute)),
		newJob("future", t0.Add(time.Minute)),
		newJob("early", t0.Add(-time.Hour)),
		newJob("now", t0),
	} {
		_, err := q.Enqueue(j)
		require.NoError(t, err)
	}

	require.NoError(t, s.Sweep(context.Background(), t0))
	assert.Equal(t, []string{"early", "late", "now"}, h.Fired())
	pending := q.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "future", pending[0].ID)
}

func TestScheduler_SweepErrors(t *testing.T) {
	t.Parallel()
	q := NewJobQueue()
	h := &recordingHandler{
		fire: func(_ context.Context, job domain.ScheduledJob) error {
			switch job.ID {
			case "err":
				return errors.New("transport gone")
			case "panic":
				panic("handler bug")
			}
			return nil
		},
	}
	s := NewScheduler(q, h)

	for _, j := range []domain.ScheduledJob{
		newJob("err", t0.Add(-3*time.Minute)),
		newJob("panic", t0.Add(-2*time.Minute)),
		newJob("ok", t0.Add(-time.Minute)),
	} {
		_, err := q.Enqueue(j)
		require.NoError(t, err)
	}

	err := s.Sweep(context.Background(), t0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchedulerDispatch)
	assert.Contains(t, err.Error(), "transport gone")
	assert.Contains(t, err.Error(), "handler bug")
	assert.Equal(t, []string{"err", "panic", "ok"}, h.Fired())

	// failed jobs are dropped, not retried
	assert.Empty(t, q.Pending())
	require.NoError(t, s.Sweep(context.Background(), t0.Add(time.Hour)))
	assert.Len(t, h.Fired(), 3)
}

func TestScheduler_CancelWhileFiring(t *testing.T) {
	t.Parallel()
	q := NewJobQueue()
	var cancelErr error
	h := &recordingHandler{
		fire: func(_ context.Context, job domain.ScheduledJob) error {
			cancelErr = q.Cancel(job.ID)
			return nil
		},
	}
	s := NewScheduler(q, h)
	_, err := q.Enqueue(newJob("a", t0))
	require.NoError(t, err)

	require.NoError(t, s.Sweep(context.Background(), t0))
	assert.ErrorIs(t, cancelErr, errs.ErrJobFiring)
	assert.Empty(t, q.Pending())
}

func TestScheduler_SweepConcurrent(t *testing.T) {
	t.Parallel()
	q := NewJobQueue()

	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	h := &recordingHandler{
		fire: func(_ context.Context, job domain.ScheduledJob) error {
			mu.Lock()
			running++
			if running > peak {
				peak = running
			}
			mu.Unlock()
			time.Sleep(10 * time.Millisecond)
			mu.Lock()
			running--
			mu.Unlock()
			if job.ID == "j3" {
				return errors.New("j3 failed")
			}
			return nil
		},
	}
	s := NewScheduler(q, h, WithConcurrency(2))
	for _, id := range []string{"j1", "j2", "j3", "j4", "j5"} {
		_, err := q.Enqueue(newJob(id, t0))
		require.NoError(t, err)
	}

	err := s.Sweep(context.Background(), t0)
	assert.ErrorIs(t, err, errs.ErrSchedulerDispatch)
	assert.ElementsMatch(t, []string{"j1", "j2", "j3", "j4", "j5"}, h.Fired())
	assert.LessOrEqual(t, peak, 2)
	assert.Empty(t, q.Pending())
}

func TestScheduler_Start(t *testing.T) {
	t.Parallel()
	q := NewJobQueue()
	h := &recordingHandler{}
	s := NewScheduler(q, h, WithInterval(5*time.Millisecond))

	_, err := q.Enqueue(newJob("a", time.Now().Add(20*time.Millisecond)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(h.Fired()) == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.Empty(t, q.Pending())
	assert.Equal(t, []string{"a"}, h.Fired())
}
