package siteconfig

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/models"
	"churchEvents/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateConfig(ctx context.Context, c models.SiteConfig) (*models.SiteConfig, error)
	UpdateConfigs(ctx context.Context, values map[string]string, check storage.ConfigCheck) ([]models.SiteConfig, error)
}

type CreateInput struct {
	Key         string `json:"key" validate:"required,max=100,config_key"`
	Value       string `json:"value"`
	Type        string `json:"type" validate:"required,config_type"`
	Category    string `json:"category" validate:"max=50"`
	Description string `json:"description" validate:"max=500"`
	IsPublic    bool   `json:"isPublic"`
}

type Service struct {
	log     *slog.Logger
	storage Storage
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{
		log:     log.With(slog.String("component", "services/siteconfig")),
		storage: storage,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.SiteConfig, error) {
	const op = "services.siteconfig.Create"

	in.Key = strings.TrimSpace(in.Key)
	in.Category = strings.TrimSpace(in.Category)
	if in.Category == "" {
		in.Category = "general"
	}

	fields := validate.Struct(in)
	if len(fields) == 0 {
		fields = validate.ConfigValue("value", models.ConfigType(in.Type), in.Value)
	}
	if err := validate.AsError(fields); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.storage.CreateConfig(ctx, models.SiteConfig{
		Key:         in.Key,
		Value:       in.Value,
		Type:        models.ConfigType(in.Type),
		Category:    in.Category,
		Description: in.Description,
		IsPublic:    in.IsPublic,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// Update sets every key of values in one all-or-nothing batch. Each value
// must parse as the type already recorded for its key.
func (s *Service) Update(ctx context.Context, values map[string]string) ([]models.SiteConfig, error) {
	const op = "services.siteconfig.Update"

	if len(values) == 0 {
		return nil, fmt.Errorf("%s: %w", op, &validate.Error{Fields: []response.FieldError{{
			Field:   "values",
			Rule:    "required",
			Message: "values deve conter ao menos uma chave",
		}}})
	}

	updated, err := s.storage.UpdateConfigs(ctx, values, func(current models.SiteConfig, value string) error {
		return validate.AsError(validate.ConfigValue(current.Key, current.Type, value))
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("site config updated", slog.Int("keys", len(updated)))

	return updated, nil
}
