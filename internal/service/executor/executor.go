package executor

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/service/history"
	"gitee.com/flycash/campaign-platform/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

// Progress is told (done, total) after every attempt of a batch.
type Progress func(done, total int)

// Executor performs exactly one send per recipient and records the result.
type Executor interface {
	// Deliver never returns an error. Transport failures and panics become a
	// Failed outcome, and the attempt is always appended to the history.
	Deliver(ctx context.Context, r domain.Recipient, tmpl domain.Template) domain.DeliveryAttempt
	// DeliverBatch delivers to recipients one after another, in order.
	DeliverBatch(ctx context.Context, recipients []domain.Recipient, tmpl domain.Template, progress Progress) []domain.DeliveryAttempt
}

type executor struct {
	sender  provider.MessageSender
	history history.Service
	now     func() time.Time
	logger  *elog.Component
}

type Option func(e *executor)

func WithClock(now func() time.Time) Option {
	return func(e *executor) {
		e.now = now
	}
}

func NewExecutor(sender provider.MessageSender, historySvc history.Service, opts ...Option) Executor {
	e := &executor{
		sender:  sender,
		history: historySvc,
		now:     time.Now,
		logger:  elog.DefaultLogger.With(elog.String("component", "executor")),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *executor) Deliver(ctx context.Context, r domain.Recipient, tmpl domain.Template) domain.DeliveryAttempt {
	message := tmpl.Render(r)
	attempt := domain.DeliveryAttempt{
		Phone:   r.Phone,
		Message: message,
		Time:    e.now(),
	}

	if err := e.send(ctx, r.Phone, message); err != nil {
		e.logger.Warn("delivery failed",
			elog.String("phone", r.Phone),
			elog.FieldErr(err))
		attempt.Outcome = domain.Failed(err.Error())
	} else {
		attempt.Outcome = domain.Succeeded()
	}

	if err := e.appendHistory(ctx, attempt); err != nil {
		e.logger.Error("append delivery history failed",
			elog.String("phone", r.Phone),
			elog.String("outcome", attempt.Outcome.String()),
			elog.FieldErr(err))
	}
	return attempt
}

// send turns a panicking transport into an error.
func (e *executor) send(ctx context.Context, phone, message string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sender panic: %v", r)
		}
	}()
	return e.sender.Send(ctx, phone, message)
}

// appendHistory turns a panicking history store into an error.
func (e *executor) appendHistory(ctx context.Context, a domain.DeliveryAttempt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("history panic: %v", r)
		}
	}()
	return e.history.Append(ctx, a)
}

func (e *executor) DeliverBatch(ctx context.Context, recipients []domain.Recipient, tmpl domain.Template, progress Progress) []domain.DeliveryAttempt {
	total := len(recipients)
	attempts := make([]domain.DeliveryAttempt, 0, total)
	for i, r := range recipients {
		attempts = append(attempts, e.Deliver(ctx, r, tmpl))
		e.logger.Debug("batch progress", elog.Int("done", i+1), elog.Int("total", total))
		if progress != nil {
			progress(i+1, total)
		}
	}
	return attempts
}
