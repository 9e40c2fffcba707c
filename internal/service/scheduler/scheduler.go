package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"gitee.com/flycash/campaign-platform/internal/pkg/loopjob"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

const DefaultInterval = 10 * time.Second

// JobHandler executes a due job. The campaign orchestrator implements it.
type JobHandler interface {
	Fire(ctx context.Context, job domain.ScheduledJob) error
}

type Scheduler struct {
	queue       *JobQueue
	handler     JobHandler
	interval    time.Duration
	concurrency int
	logger      *elog.Component
}

type Option func(s *Scheduler)

func WithInterval(interval time.Duration) Option {
	return func(s *Scheduler) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithConcurrency bounds how many due jobs of one sweep fire at the same
// time. Values below 2 fire them one by one.
func WithConcurrency(n int) Option {
	return func(s *Scheduler) {
		s.concurrency = n
	}
}

func NewScheduler(queue *JobQueue, handler JobHandler, opts ...Option) *Scheduler {
	s := &Scheduler{
		queue:       queue,
		handler:     handler,
		interval:    DefaultInterval,
		concurrency: 1,
		logger:      elog.DefaultLogger.With(elog.String("component", "scheduler")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start polls the queue until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	loopjob.NewInfiniteLoop("campaign-scheduler", s.interval, func(ctx context.Context) error {
		return s.Sweep(ctx, time.Now())
	}).Run(ctx)
}

// Sweep fires every job due at now, earliest first. A failed job is logged
// and dropped, never re-queued. The returned error aggregates the failures.
func (s *Scheduler) Sweep(ctx context.Context, now time.Time) error {
	due := s.queue.takeDue(now)
	if len(due) == 0 {
		return nil
	}
	s.logger.Info("firing due jobs", elog.Int("count", len(due)))

	if s.concurrency <= 1 {
		var res *multierror.Error
		for _, job := range due {
			if err := s.fire(ctx, job); err != nil {
				res = multierror.Append(res, err)
			}
		}
		return res.ErrorOrNil()
	}

	var (
		mu  sync.Mutex
		res *multierror.Error
		eg  errgroup.Group
	)
	eg.SetLimit(s.concurrency)
	for _, job := range due {
		eg.Go(func() error {
			if err := s.fire(ctx, job); err != nil {
				mu.Lock()
				res = multierror.Append(res, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()
	return res.ErrorOrNil()
}

func (s *Scheduler) fire(ctx context.Context, job domain.ScheduledJob) (err error) {
	defer s.queue.remove(job.ID)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: job %s: panic: %v", errs.ErrSchedulerDispatch, job.ID, r)
		}
		if err != nil {
			s.logger.Error("scheduled job failed",
				elog.String("jobId", job.ID),
				elog.String("campaign", job.CampaignName),
				elog.FieldErr(err))
		}
	}()
	if err = s.handler.Fire(ctx, job); err != nil {
		return fmt.Errorf("%w: job %s: %w", errs.ErrSchedulerDispatch, job.ID, err)
	}
	return nil
}
