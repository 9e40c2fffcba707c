package contact

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
)

// Service is the address book. Entries are keyed by name and listed in the
// order they were first added.
type Service interface {
	// Add stores the contact. Re-adding a name replaces its phone in place.
	Add(ctx context.Context, name, phone string) (domain.Contact, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.Contact, error)
}

type memoryService struct {
	mu       sync.RWMutex
	contacts []domain.Contact
}

func NewService() Service {
	return &memoryService{}
}

func (s *memoryService) Add(_ context.Context, name, phone string) (domain.Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return domain.Contact{}, fmt.Errorf("%w: contact name and phone are required", errs.ErrInvalidParameter)
	}
	c := domain.Contact{Name: name, Phone: phone}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].Name == name {
			s.contacts[i] = c
			return c, nil
		}
	}
	s.contacts = append(s.contacts, c)
	return c, nil
}

func (s *memoryService) Delete(_ context.Context, name string) error {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].Name == name {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", errs.ErrContactNotFound, name)
}

func (s *memoryService) List(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Contact, len(s.contacts))
	copy(res, s.contacts)
	return res, nil
}
