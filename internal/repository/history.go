package repository

import (
	"context"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type DeliveryAttemptRepository interface {
	Append(ctx context.Context, a domain.DeliveryAttempt) error
	FindAll(ctx context.Context) ([]domain.DeliveryAttempt, error)
}

type deliveryAttemptRepository struct {
	dao dao.DeliveryAttemptDAO
}

func NewDeliveryAttemptRepository(d dao.DeliveryAttemptDAO) DeliveryAttemptRepository {
	return &deliveryAttemptRepository{dao: d}
}

func (r *deliveryAttemptRepository) Append(ctx context.Context, a domain.DeliveryAttempt) error {
	return r.dao.Insert(ctx, r.toEntity(a))
}

func (r *deliveryAttemptRepository) FindAll(ctx context.Context) ([]domain.DeliveryAttempt, error) {
	entities, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.DeliveryAttempt) domain.DeliveryAttempt {
		return r.toDomain(src)
	}), nil
}

func (r *deliveryAttemptRepository) toEntity(a domain.DeliveryAttempt) dao.DeliveryAttempt {
	return dao.DeliveryAttempt{
		Phone:    a.Phone,
		Message:  a.Message,
		Status:   string(a.Outcome.Status),
		Reason:   a.Outcome.Reason,
		SendTime: a.Time.UnixMilli(),
		Ctime:    time.Now().UnixMilli(),
	}
}

func (r *deliveryAttemptRepository) toDomain(e dao.DeliveryAttempt) domain.DeliveryAttempt {
	return domain.DeliveryAttempt{
		Phone:   e.Phone,
		Message: e.Message,
		Time:    time.UnixMilli(e.SendTime),
		Outcome: domain.Outcome{
			Status: domain.DeliveryStatus(e.Status),
			Reason: e.Reason,
		},
	}
}
