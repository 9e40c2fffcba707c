package scheduler

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"github.com/gofrs/uuid"
)

type jobState uint8

const (
	jobStatePending jobState = iota
	jobStateFiring
)

type entry struct {
	job   domain.ScheduledJob
	state jobState
}

// JobQueue is the pending set of scheduled jobs. A job moves from Pending to
// Firing when a sweep picks it up and leaves the queue once its handler
// returns.
type JobQueue struct {
	mu   sync.Mutex
	jobs map[string]*entry
	now  func() time.Time
}

func NewJobQueue() *JobQueue {
	return &JobQueue{
		jobs: make(map[string]*entry),
		now:  time.Now,
	}
}

// Enqueue stores job as Pending and returns it with its ID and CreatedAt set.
func (q *JobQueue) Enqueue(job domain.ScheduledJob) (domain.ScheduledJob, error) {
	if job.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return domain.ScheduledJob{}, fmt.Errorf("generate job id: %w", err)
		}
		job.ID = id.String()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = q.now()
	}
	job.Recipients = append([]domain.Recipient(nil), job.Recipients...)

	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.jobs[job.ID]; ok {
		return domain.ScheduledJob{}, fmt.Errorf("%w: duplicate job id %s", errs.ErrInvalidParameter, job.ID)
	}
	q.jobs[job.ID] = &entry{job: job, state: jobStatePending}
	return job, nil
}

// Cancel removes a Pending job. A job that a sweep is firing cannot be cancelled.
func (q *JobQueue) Cancel(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.jobs[id]
	if !ok {
		return fmt.Errorf("%w: %s", errs.ErrJobNotFound, id)
	}
	if e.state == jobStateFiring {
		return fmt.Errorf("%w: %s", errs.ErrJobFiring, id)
	}
	delete(q.jobs, id)
	return nil
}

// Pending returns a snapshot of the jobs waiting to fire, earliest first.
func (q *JobQueue) Pending() []domain.ScheduledJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	res := make([]domain.ScheduledJob, 0, len(q.jobs))
	for _, e := range q.jobs {
		if e.state == jobStatePending {
			res = append(res, e.job)
		}
	}
	sortByFireAt(res)
	return res
}

// takeDue marks every pending job due at now as Firing and returns them
// earliest first.
func (q *JobQueue) takeDue(now time.Time) []domain.ScheduledJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	var res []domain.ScheduledJob
	for _, e := range q.jobs {
		if e.state == jobStatePending && e.job.IsDue(now) {
			e.state = jobStateFiring
			res = append(res, e.job)
		}
	}
	sortByFireAt(res)
	return res
}

func (q *JobQueue) remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.jobs, id)
}

func sortByFireAt(jobs []domain.ScheduledJob) {
	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].FireAt.Equal(jobs[j].FireAt) {
			return jobs[i].FireAt.Before(jobs[j].FireAt)
		}
		if !jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
		}
		return jobs[i].ID < jobs[j].ID
	})
}
