package campaign

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/repository"
)

// IDGenerator is satisfied by *sonyflake.Sonyflake.
type IDGenerator interface {
	NextID() (uint64, error)
}

// Service tracks named batches of sends, grouped by calendar month.
type Service interface {
	// Record stamps a new campaign with the current time and files it under
	// the current month. Records are never updated or merged.
	Record(ctx context.Context, name, message string, recipientCount int, status domain.CampaignStatus) (domain.Campaign, error)
	// ListByMonth maps month labels to campaigns, newest first in each month.
	ListByMonth(ctx context.Context) (map[string][]domain.Campaign, error)
	// Groups is ListByMonth ordered by month, most recent first.
	Groups(ctx context.Context) ([]domain.MonthGroup, error)
}

type service struct {
	repo  repository.CampaignRepository
	idGen IDGenerator
	now   func() time.Time
}

type Option func(s *service)

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func NewService(repo repository.CampaignRepository, idGen IDGenerator, opts ...Option) Service {
	s := &service{
		repo:  repo,
		idGen: idGen,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Record(ctx context.Context, name, message string, recipientCount int, status domain.CampaignStatus) (domain.Campaign, error) {
	id, err := s.idGen.NextID()
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}
	now := s.now()
	c := domain.Campaign{
		ID:             id,
		Name:           name,
		Message:        message,
		RecipientCount: recipientCount,
		Status:         status,
		Month:          domain.MonthLabel(now),
		CreatedAt:      now,
	}
	if err = s.repo.Create(ctx, c); err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

func (s *service) ListByMonth(ctx context.Context) (map[string][]domain.Campaign, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[string][]domain.Campaign)
	for _, c := range all {
		res[c.Month] = append(res[c.Month], c)
	}
	for _, cs := range res {
		domain.SortCampaignsNewestFirst(cs)
	}
	return res, nil
}

func (s *service) Groups(ctx context.Context) ([]domain.MonthGroup, error) {
	byMonth, err := s.ListByMonth(ctx)
	if err != nil {
		return nil, err
	}
	groups := make([]domain.MonthGroup, 0, len(byMonth))
	for month, cs := range byMonth {
		groups = append(groups, domain.MonthGroup{Month: month, Campaigns: cs})
	}
	sortGroupsNewestFirst(groups)
	return groups, nil
}
