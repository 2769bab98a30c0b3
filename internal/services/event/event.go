// Package event manages the church events registrations are taken for.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"churchEvents/internal/lib/slug"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateEvent(ctx context.Context, e models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, e models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*models.Event, error)
	GetEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	GetRegistrations(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, error)
}

// Input is the editable part of an event. An empty slug is derived from
// the title on create and left unchanged on update; a nil IsActive means
// active on create and unchanged on update.
type Input struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Slug        string    `json:"slug" validate:"required,max=80,slug"`
	Description string    `json:"description" validate:"max=5000"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required,max=200"`
	Category    string    `json:"category" validate:"required,event_category"`
	ImageURL    string    `json:"imageUrl" validate:"max=500"`
	Capacity    int       `json:"capacity" validate:"required,min=1"`
	IsActive    *bool     `json:"isActive"`
	IsFeatured  bool      `json:"isFeatured"`
}

type Service struct {
	log     *slog.Logger
	storage Storage
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{
		log:     log.With(slog.String("component", "services/event")),
		storage: storage,
	}
}

func (in Input) normalized() Input {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	return in
}

func (in Input) apply(e *models.Event) {
	e.Title = in.Title
	e.Slug = in.Slug
	e.Description = in.Description
	e.Date = in.Date.UTC()
	e.Location = in.Location
	e.Category = models.Category(in.Category)
	e.ImageURL = in.ImageURL
	e.Capacity = in.Capacity
	e.IsFeatured = in.IsFeatured
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*models.Event, error) {
	const op = "services.event.Create"

	in = in.normalized()
	if in.Slug == "" {
		in.Slug = slug.Make(in.Title)
	}

	if err := validate.AsError(validate.Struct(in)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e := models.Event{IsActive: true}
	in.apply(&e)

	created, err := s.storage.CreateEvent(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event created", slog.String("event_id", created.ID), slog.String("slug", created.Slug))

	return created, nil
}

// Update replaces the editable fields of event id. Lowering the capacity
// below the registrations already counted fails with
// storage.ErrCapacityExceeded.
func (s *Service) Update(ctx context.Context, id string, in Input) (*models.Event, error) {
	const op = "services.event.Update"

	if err := validate.AsError(validate.Var("id", id, "required,uuid")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.storage.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	in = in.normalized()
	if in.Slug == "" {
		in.Slug = current.Slug
	}

	if err = validate.AsError(validate.Struct(in)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	in.apply(current)

	updated, err := s.storage.UpdateEvent(ctx, *current)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// Delete removes the event together with its registrations.
func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "services.event.Delete"

	if err := validate.AsError(validate.Var("id", id, "required,uuid")); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event deleted", slog.String("event_id", id))

	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Event, error) {
	const op = "services.event.Get"

	if err := validate.AsError(validate.Var("id", id, "required,uuid")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e, err := s.storage.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	const op = "services.event.GetBySlug"

	e, err := s.storage.GetEventBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

func (s *Service) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	const op = "services.event.List"

	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%s: %w", op, validate.AsError(
			validate.Var("category", string(filter.Category), "event_category"),
		))
	}

	events, err := s.storage.GetEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// Registrations returns the event with its registrations in creation
// order.
func (s *Service) Registrations(ctx context.Context, id string) (*models.Event, []models.Registration, error) {
	const op = "services.event.Registrations"

	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	regs, err := s.storage.GetRegistrations(ctx, models.RegistrationFilter{EventID: id})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, regs, nil
}
