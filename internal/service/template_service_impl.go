package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/builderops/warrantydesk/internal/domain"
	"github.com/builderops/warrantydesk/internal/repository"
	"github.com/google/uuid"
)

type templateService struct {
	templates repository.TemplateRepo
	observer  UseCaseObserver
}

func NewTemplateService(templates repository.TemplateRepo, observers ...UseCaseObserver) TemplateService {
	return &templateService{
		templates: templates,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *templateService) List(ctx context.Context) ([]*domain.Template, error) {
	return s.templates.List(ctx)
}

func (s *templateService) Get(ctx context.Context, id string) (*domain.Template, error) {
	return s.templates.GetByID(ctx, id)
}

func (s *templateService) Save(ctx context.Context, t *domain.Template) error {
	start := time.Now()
	var err error
	if strings.TrimSpace(t.Name) == "" {
		err = fmt.Errorf("template name is required")
	} else {
		now := start.UTC()
		if t.ID == "" {
			t.ID = uuid.New().String()
			t.CreatedAt = now
		}
		t.UpdatedAt = now
		err = s.templates.Save(ctx, t)
	}
	observe(ctx, s.observer, "template_save", "", start, err, map[string]any{"template_id": t.ID})
	return err
}

func (s *templateService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.templates.Delete(ctx, id)
	observe(ctx, s.observer, "template_delete", "", start, err, map[string]any{"template_id": id})
	return err
}

func (s *templateService) SetDefault(ctx context.Context, id *string) error {
	start := time.Now()
	err := s.templates.SetDefault(ctx, id)
	fields := map[string]any{"cleared": id == nil}
	if id != nil {
		fields["template_id"] = *id
	}
	observe(ctx, s.observer, "template_set_default", "", start, err, fields)
	return err
}

func (s *templateService) GetDefault(ctx context.Context) (*domain.Template, error) {
	return s.templates.GetDefault(ctx)
}
