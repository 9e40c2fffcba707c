package repository

import (
	"context"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type CampaignRepository interface {
	Create(ctx context.Context, c domain.Campaign) error
	// FindAll returns campaigns in the order they were recorded.
	FindAll(ctx context.Context) ([]domain.Campaign, error)
}

type campaignRepository struct {
	dao dao.CampaignDAO
}

func NewCampaignRepository(d dao.CampaignDAO) CampaignRepository {
	return &campaignRepository{dao: d}
}

func (r *campaignRepository) Create(ctx context.Context, c domain.Campaign) error {
	return r.dao.Insert(ctx, r.toEntity(c))
}

func (r *campaignRepository) FindAll(ctx context.Context) ([]domain.Campaign, error) {
	entities, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Campaign) domain.Campaign {
		return r.toDomain(src)
	}), nil
}

func (r *campaignRepository) toEntity(c domain.Campaign) dao.Campaign {
	return dao.Campaign{
		ID:             c.ID,
		Name:           c.Name,
		Message:        c.Message,
		RecipientCount: int64(c.RecipientCount),
		Status:         c.Status.String(),
		Month:          c.Month,
		Ctime:          c.CreatedAt.UnixMilli(),
		Utime:          c.CreatedAt.UnixMilli(),
	}
}

func (r *campaignRepository) toDomain(e dao.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:             e.ID,
		Name:           e.Name,
		Message:        e.Message,
		RecipientCount: int(e.RecipientCount),
		Status:         domain.CampaignStatus(e.Status),
		Month:          e.Month,
		CreatedAt:      time.UnixMilli(e.Ctime),
	}
}
