// Package registration is the admission and status workflow for event
// registrations: field validation, the capacity gate, status changes and
// exports. Seat accounting itself happens atomically in the storage layer.
package registration

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"churchEvents/internal/lib/logger/sl"
	"churchEvents/internal/lib/metrics"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/models"
	"churchEvents/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateRegistration(ctx context.Context, r models.Registration) (*models.Registration, error)
	UpdateRegistrationStatus(ctx context.Context, id string, status models.Status) (*models.Registration, error)
	DeleteRegistration(ctx context.Context, id string) error
	GetRegistration(ctx context.Context, id string) (*models.Registration, error)
	GetRegistrations(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
}

type CreateInput struct {
	EventID             string `json:"eventId" validate:"required,uuid"`
	Name                string `json:"name" validate:"required,max=100"`
	Email               string `json:"email" validate:"required,email,max=254"`
	Phone               string `json:"phone" validate:"required,phone_br"`
	Organization        string `json:"organization" validate:"max=200"`
	DietaryRestrictions string `json:"dietaryRestrictions" validate:"max=500"`
	AccessibilityNeeds  string `json:"accessibilityNeeds" validate:"max=500"`
}

type Service struct {
	log     *slog.Logger
	storage Storage
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{
		log:     log.With(slog.String("component", "services/registration")),
		storage: storage,
	}
}

// Create admits a public submission. The returned registration is PENDING
// when a seat was free and WAITLIST otherwise; a full event never rejects.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Registration, error) {
	const op = "services.registration.Create"

	in = in.normalized()

	if err := validate.AsError(validate.Struct(in)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg, err := s.storage.CreateRegistration(ctx, models.Registration{
		EventID:             in.EventID,
		Name:                in.Name,
		Email:               in.Email,
		Phone:               in.Phone,
		Organization:        in.Organization,
		DietaryRestrictions: in.DietaryRestrictions,
		AccessibilityNeeds:  in.AccessibilityNeeds,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordRegistrationCreated(string(reg.Status))

	if reg.Status == models.StatusWaitlist {
		s.log.Info("event full, registration waitlisted",
			slog.String("op", op),
			slog.String("event_id", reg.EventID),
			slog.String("registration_id", reg.ID),
		)
	}

	return reg, nil
}

func (in CreateInput) normalized() CreateInput {
	in.EventID = strings.TrimSpace(in.EventID)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Organization = strings.TrimSpace(in.Organization)
	in.DietaryRestrictions = strings.TrimSpace(in.DietaryRestrictions)
	in.AccessibilityNeeds = strings.TrimSpace(in.AccessibilityNeeds)
	return in
}

// UpdateStatus applies an admin status change.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Registration, error) {
	const op = "services.registration.UpdateStatus"

	fields := validate.Var("id", id, "required,uuid")
	fields = append(fields, validate.Var("status", string(status), "required,reg_status")...)
	if err := validate.AsError(fields); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg, err := s.storage.UpdateRegistrationStatus(ctx, id, status)
	if err != nil {
		outcome := "error"
		if errors.Is(err, storage.ErrCapacityExceeded) {
			outcome = "capacity_exceeded"
		}
		metrics.RecordStatusChange(string(status), outcome)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordStatusChange(string(status), "ok")

	return reg, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "services.registration.Delete"

	if err := validate.AsError(validate.Var("id", id, "required,uuid")); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteRegistration(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordRegistrationDeleted()

	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Registration, error) {
	const op = "services.registration.Get"

	if err := validate.AsError(validate.Var("id", id, "required,uuid")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg, err := s.storage.GetRegistration(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reg, nil
}

func (s *Service) List(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, error) {
	const op = "services.registration.List"

	regs, err := s.storage.GetRegistrations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return regs, nil
}

var exportHeader = []string{
	"id", "event_id", "event_title", "name", "email", "phone", "organization",
	"dietary_restrictions", "accessibility_needs", "status", "created_at",
}

// Export writes the registrations matching filter as CSV, one row each in
// creation order, resolving event titles along the way.
func (s *Service) Export(ctx context.Context, filter models.RegistrationFilter, w io.Writer) (int, error) {
	const op = "services.registration.Export"

	regs, err := s.storage.GetRegistrations(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	titles := make(map[string]string)

	cw := csv.NewWriter(w)
	if err = cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, r := range regs {
		title, ok := titles[r.EventID]
		if !ok {
			event, err := s.storage.GetEvent(ctx, r.EventID)
			switch {
			case err == nil:
				title = event.Title
			case errors.Is(err, storage.ErrEventNotFound):
				s.log.Warn("registration references missing event",
					slog.String("registration_id", r.ID), sl.Err(err))
			default:
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			titles[r.EventID] = title
		}

		err = cw.Write([]string{
			r.ID,
			r.EventID,
			title,
			r.Name,
			r.Email,
			r.Phone,
			r.Organization,
			r.DietaryRestrictions,
			r.AccessibilityNeeds,
			string(r.Status),
			r.CreatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	cw.Flush()
	if err = cw.Error(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return len(regs), nil
}
