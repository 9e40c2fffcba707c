package loopjob

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
)

// InfiniteLoop runs biz once per interval until ctx is cancelled.
type InfiniteLoop struct {
	interval time.Duration
	logger   *elog.Component
	biz      func(ctx context.Context) error
}

func NewInfiniteLoop(
	key string,
	interval time.Duration,
	// biz sees a context that is not cancelled with ctx, so a run that has
	// started always finishes.
	biz func(ctx context.Context) error,
) *InfiniteLoop {
	return &InfiniteLoop{
		interval: interval,
		logger:   elog.DefaultLogger.With(elog.String("key", key)),
		biz:      biz,
	}
}

// Run blocks until ctx is cancelled.
func (l *InfiniteLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	bizCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop cancelled, exiting", elog.FieldErr(ctx.Err()))
			return
		case <-ticker.C:
			if err := l.biz(bizCtx); err != nil {
				l.logger.Error("loop job failed", elog.FieldErr(err))
			}
		}
	}
}
