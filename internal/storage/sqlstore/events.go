package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"churchEvents/internal/models"
	"churchEvents/internal/storage"

	"github.com/google/uuid"
)

const eventColumns = `id, title, slug, description, date, location, category, image_url,
	capacity, current_registrations, is_active, is_featured, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Slug,
		&e.Description,
		&e.Date,
		&e.Location,
		&e.Category,
		&e.ImageURL,
		&e.Capacity,
		&e.CurrentRegistrations,
		&e.IsActive,
		&e.IsFeatured,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Date = e.Date.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()

	return &e, nil
}

// CreateEvent stores e with a fresh id and a zero registration counter.
func (s *Storage) CreateEvent(ctx context.Context, e models.Event) (*models.Event, error) {
	const op = "storage.sqlstore.CreateEvent"

	now := s.now()
	e.ID = uuid.NewString()
	e.CurrentRegistrations = 0
	e.Date = e.Date.UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.DB.ExecContext(ctx, s.q(query),
		e.ID, e.Title, e.Slug, e.Description, e.Date, e.Location, e.Category, e.ImageURL,
		e.Capacity, e.CurrentRegistrations, e.IsActive, e.IsFeatured, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if s.dialect.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &e, nil
}

// UpdateEvent replaces the editable fields of the event e.ID. The capacity
// may not drop below the current registration count.
func (s *Storage) UpdateEvent(ctx context.Context, e models.Event) (*models.Event, error) {
	const op = "storage.sqlstore.UpdateEvent"

	query := `
		UPDATE events
		SET title = ?, slug = ?, description = ?, date = ?, location = ?, category = ?,
			image_url = ?, capacity = ?, is_active = ?, is_featured = ?, updated_at = ?
		WHERE id = ? AND current_registrations <= ?`

	res, err := s.DB.ExecContext(ctx, s.q(query),
		e.Title, e.Slug, e.Description, e.Date.UTC(), e.Location, e.Category,
		e.ImageURL, e.Capacity, e.IsActive, e.IsFeatured, s.now(),
		e.ID, e.Capacity,
	)
	if err != nil {
		if s.dialect.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := expectOne(res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.getEvent(ctx, s.DB, "id", e.ID, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !updated {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrCapacityExceeded)
	}

	return current, nil
}

// DeleteEvent removes the event and its registrations.
func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	const op = "storage.sqlstore.DeleteEvent"

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM registrations WHERE event_id = ?`), id); err != nil {
			return fmt.Errorf("failed to delete registrations: %w", err)
		}

		res, err := tx.ExecContext(ctx, s.q(`DELETE FROM events WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}

		deleted, err := expectOne(res)
		if err != nil {
			return err
		}
		if !deleted {
			return storage.ErrEventNotFound
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.sqlstore.GetEvent"

	e, err := s.getEvent(ctx, s.DB, "id", id, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

func (s *Storage) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	const op = "storage.sqlstore.GetEventBySlug"

	e, err := s.getEvent(ctx, s.DB, "slug", slug, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

func (s *Storage) getEvent(ctx context.Context, db queryer, column, value string, lock bool) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE ` + column + ` = ?`
	if lock {
		query += s.dialect.ForUpdate
	}

	e, err := scanEvent(db.QueryRowContext(ctx, s.q(query), value))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return e, nil
}

// GetEvents lists events by date. The registration counter is read as
// stored, never recomputed from the registrations table.
func (s *Storage) GetEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	const op = "storage.sqlstore.GetEvents"

	var conds []string
	var args []any

	if filter.Active != nil {
		conds = append(conds, "is_active = ?")
		args = append(args, *filter.Active)
	}
	if filter.Featured != nil {
		conds = append(conds, "is_featured = ?")
		args = append(args, *filter.Featured)
	}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY date ASC`

	rows, err := s.DB.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get events: %w", op, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, *e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	return events, nil
}
