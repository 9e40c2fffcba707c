package draft

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"github.com/patrickmn/go-cache"
)

// Service keeps unsent messages. A draft is keyed by its first
// domain.DraftKeyLength characters, so saving a message with the same opening
// replaces the earlier draft.
type Service interface {
	Save(ctx context.Context, message string) (domain.Draft, error)
	Get(ctx context.Context, key string) (domain.Draft, error)
	Delete(ctx context.Context, key string) error
	// List returns drafts oldest first.
	List(ctx context.Context) ([]domain.Draft, error)
}

type cacheService struct {
	cache *cache.Cache
	now   func() time.Time
}

// NewService stores drafts in c. Items are saved without expiration.
func NewService(c *cache.Cache) Service {
	return &cacheService{
		cache: c,
		now:   time.Now,
	}
}

func (s *cacheService) Save(_ context.Context, message string) (domain.Draft, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.Draft{}, fmt.Errorf("%w: draft is empty", errs.ErrInvalidParameter)
	}
	d := domain.Draft{
		Key:     domain.DraftKey(message),
		Message: message,
		SavedAt: s.now(),
	}
	s.cache.Set(d.Key, d, cache.NoExpiration)
	return d, nil
}

func (s *cacheService) Get(_ context.Context, key string) (domain.Draft, error) {
	val, ok := s.cache.Get(key)
	if !ok {
		return domain.Draft{}, fmt.Errorf("%w: %s", errs.ErrDraftNotFound, key)
	}
	d, ok := val.(domain.Draft)
	if !ok {
		return domain.Draft{}, fmt.Errorf("%w: %s", errs.ErrDraftNotFound, key)
	}
	return d, nil
}

func (s *cacheService) Delete(_ context.Context, key string) error {
	if _, ok := s.cache.Get(key); !ok {
		return fmt.Errorf("%w: %s", errs.ErrDraftNotFound, key)
	}
	s.cache.Delete(key)
	return nil
}

func (s *cacheService) List(_ context.Context) ([]domain.Draft, error) {
	items := s.cache.Items()
	res := make([]domain.Draft, 0, len(items))
	for _, item := range items {
		if d, ok := item.Object.(domain.Draft); ok {
			res = append(res, d)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].SavedAt.Equal(res[j].SavedAt) {
			return res[i].SavedAt.Before(res[j].SavedAt)
		}
		return res[i].Key < res[j].Key
	})
	return res, nil
}
