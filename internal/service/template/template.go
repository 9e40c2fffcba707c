package template

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"gopkg.in/yaml.v2"
)

// Service stores reusable message templates by title, in insertion order.
type Service interface {
	// Save stores body under title, replacing an existing body in place.
	Save(ctx context.Context, title, body string) (domain.SavedTemplate, error)
	Get(ctx context.Context, title string) (domain.SavedTemplate, error)
	Delete(ctx context.Context, title string) error
	List(ctx context.Context) ([]domain.SavedTemplate, error)
	// LoadYAML saves every {title, body} entry of a YAML list.
	LoadYAML(ctx context.Context, r io.Reader) (int, error)
}

type memoryService struct {
	mu        sync.RWMutex
	templates []domain.SavedTemplate
}

func NewService() Service {
	return &memoryService{}
}

func (s *memoryService) Save(_ context.Context, title, body string) (domain.SavedTemplate, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return domain.SavedTemplate{}, fmt.Errorf("%w: template title and body are required", errs.ErrInvalidParameter)
	}
	t := domain.SavedTemplate{Title: title, Body: domain.Template(body)}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(title); i >= 0 {
		s.templates[i] = t
		return t, nil
	}
	s.templates = append(s.templates, t)
	return t, nil
}

func (s *memoryService) Get(_ context.Context, title string) (domain.SavedTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(strings.TrimSpace(title))
	if i < 0 {
		return domain.SavedTemplate{}, fmt.Errorf("%w: %s", errs.ErrTemplateNotFound, title)
	}
	return s.templates[i], nil
}

func (s *memoryService) Delete(_ context.Context, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(strings.TrimSpace(title))
	if i < 0 {
		return fmt.Errorf("%w: %s", errs.ErrTemplateNotFound, title)
	}
	s.templates = append(s.templates[:i], s.templates[i+1:]...)
	return nil
}

func (s *memoryService) List(_ context.Context) ([]domain.SavedTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.SavedTemplate, len(s.templates))
	copy(res, s.templates)
	return res, nil
}

func (s *memoryService) LoadYAML(ctx context.Context, r io.Reader) (int, error) {
	var entries []domain.SavedTemplate
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: decode templates: %w", errs.ErrInvalidParameter, err)
	}
	for i, e := range entries {
		if _, err := s.Save(ctx, e.Title, string(e.Body)); err != nil {
			return i, fmt.Errorf("template %d: %w", i+1, err)
		}
	}
	return len(entries), nil
}

func (s *memoryService) indexOf(title string) int {
	for i := range s.templates {
		if s.templates[i].Title == title {
			return i
		}
	}
	return -1
}
