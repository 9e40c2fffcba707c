package ratelimit

import (
	"context"
	"fmt"

	"gitee.com/flycash/campaign-platform/internal/errs"
	"gitee.com/flycash/campaign-platform/internal/pkg/ratelimit"
	"gitee.com/flycash/campaign-platform/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrRateLimited = fmt.Errorf("%w: sender rate limited", errs.ErrDeliveryFailed)

	_ provider.MessageSender = (*Sender)(nil)
)

// Sender refuses a message when the shared limiter says the sender is over its
// rate. A refused message is a failed delivery, it is not retried or delayed.
type Sender struct {
	sender  provider.MessageSender
	limiter ratelimit.Limiter
	key     string
	logger  *elog.Component
}

func NewSender(key string, s provider.MessageSender, limiter ratelimit.Limiter) *Sender {
	return &Sender{
		sender:  s,
		limiter: limiter,
		key:     key,
		logger:  elog.DefaultLogger.With(elog.String("limitKey", key)),
	}
}

func (s *Sender) Send(ctx context.Context, phone, message string) error {
	limited, err := s.limiter.Limit(ctx, s.key)
	if err != nil {
		// Fail open when the limiter backend is unavailable.
		s.logger.Warn("rate limiter unavailable", elog.FieldErr(err))
		return s.sender.Send(ctx, phone, message)
	}
	if limited {
		return ErrRateLimited
	}
	return s.sender.Send(ctx, phone, message)
}
