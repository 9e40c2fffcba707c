package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"gitee.com/flycash/campaign-platform/internal/service/campaign"
	"gitee.com/flycash/campaign-platform/internal/service/executor"
	"gitee.com/flycash/campaign-platform/internal/service/resolver"
	"gitee.com/flycash/campaign-platform/internal/service/scheduler"
	"github.com/gotomicro/ego/core/elog"
)

var _ scheduler.JobHandler = (*Service)(nil)

// Service turns send requests into either an immediate batch or a scheduled
// job, and records the campaign for each.
type Service struct {
	queue     *scheduler.JobQueue
	executor  executor.Executor
	campaigns campaign.Service
	now       func() time.Time
	logger    *elog.Component
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	queue *scheduler.JobQueue,
	exec executor.Executor,
	campaigns campaign.Service,
	opts ...Option,
) *Service {
	s := &Service{
		queue:     queue,
		executor:  exec,
		campaigns: campaigns,
		now:       time.Now,
		logger:    elog.DefaultLogger.With(elog.String("component", "dispatch")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestSend validates req, then either sends now or schedules. A rejected
// request has no side effects and its error matches errs.ErrRejected. An
// immediate batch keeps running when ctx is cancelled.
func (s *Service) RequestSend(ctx context.Context, req SendRequest) (Outcome, error) {
	ctx = context.WithoutCancel(ctx)
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Outcome{}, errs.ErrEmptyMessage
	}
	recipients, err := resolver.Resolve(req.Imported, req.Contacts)
	if err != nil {
		return Outcome{}, err
	}

	now := s.now()
	name := strings.TrimSpace(req.CampaignName)
	if name == "" {
		name = domain.DefaultCampaignName(now)
	}

	if req.SendAt.After(now) {
		return s.schedule(ctx, domain.ScheduledJob{
			FireAt:       req.SendAt,
			Recipients:   recipients,
			Message:      domain.Template(message),
			CampaignName: name,
			CreatedAt:    now,
		})
	}
	return s.execute(ctx, name, domain.Template(message), recipients)
}

// Fire runs a due job through the immediate path.
func (s *Service) Fire(ctx context.Context, job domain.ScheduledJob) error {
	s.logger.Info("firing scheduled campaign",
		elog.String("jobId", job.ID),
		elog.String("campaign", job.CampaignName),
		elog.Int("recipients", len(job.Recipients)))
	_, err := s.execute(ctx, job.CampaignName, job.Message, job.Recipients)
	return err
}

func (s *Service) schedule(ctx context.Context, job domain.ScheduledJob) (Outcome, error) {
	job, err := s.queue.Enqueue(job)
	if err != nil {
		return Outcome{}, err
	}
	c, err := s.campaigns.Record(ctx, job.CampaignName, string(job.Message), len(job.Recipients), domain.CampaignStatusScheduled)
	if err != nil {
		// Nothing was sent yet, so undo the enqueue and let the caller retry.
		if cerr := s.queue.Cancel(job.ID); cerr != nil {
			s.logger.Error("cancel unrecorded job failed",
				elog.String("jobId", job.ID),
				elog.FieldErr(cerr))
		}
		return Outcome{}, fmt.Errorf("record scheduled campaign: %w", err)
	}
	s.logger.Info("campaign scheduled",
		elog.String("jobId", job.ID),
		elog.String("campaign", job.CampaignName),
		elog.String("fireAt", job.FireAt.Format(time.RFC3339)))
	return Outcome{Kind: OutcomeScheduled, Campaign: c, Job: &job}, nil
}

func (s *Service) execute(ctx context.Context, name string, tmpl domain.Template, recipients []domain.Recipient) (Outcome, error) {
	attempts := s.executor.DeliverBatch(ctx, recipients, tmpl, nil)
	failed := 0
	for _, a := range attempts {
		if !a.Outcome.IsSuccess() {
			failed++
		}
	}
	s.logger.Info("campaign sent",
		elog.String("campaign", name),
		elog.Int("total", len(attempts)),
		elog.Int("failed", failed))

	c, err := s.campaigns.Record(ctx, name, string(tmpl), len(attempts), domain.CampaignStatusCompleted)
	if err != nil {
		// The messages are already out. Report them rather than invite a resend.
		s.logger.Error("record completed campaign failed",
			elog.String("campaign", name),
			elog.FieldErr(err))
		return Outcome{Kind: OutcomeExecuted, Attempts: attempts}, nil
	}
	return Outcome{Kind: OutcomeExecuted, Campaign: c, Attempts: attempts}, nil
}
