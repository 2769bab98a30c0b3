package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"churchEvents/internal/models"
	"churchEvents/internal/storage"
	"churchEvents/internal/workflow"

	"github.com/google/uuid"
)

const registrationColumns = `id, event_id, name, email, phone, organization, dietary_restrictions,
	accessibility_needs, status, created_at, updated_at`

func scanRegistration(row interface{ Scan(...any) error }) (*models.Registration, error) {
	var r models.Registration
	err := row.Scan(
		&r.ID,
		&r.EventID,
		&r.Name,
		&r.Email,
		&r.Phone,
		&r.Organization,
		&r.DietaryRestrictions,
		&r.AccessibilityNeeds,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()

	return &r, nil
}

// takeSeat increments the event counter only while it is below capacity,
// in a single statement. It reports whether a seat was taken.
func (s *Storage) takeSeat(ctx context.Context, tx *sql.Tx, eventID string, requireActive bool) (bool, error) {
	query := `
		UPDATE events
		SET current_registrations = current_registrations + 1, updated_at = ?
		WHERE id = ? AND current_registrations < capacity`
	args := []any{s.now(), eventID}

	if requireActive {
		query += ` AND is_active = ?`
		args = append(args, true)
	}

	res, err := tx.ExecContext(ctx, s.q(query), args...)
	if err != nil {
		return false, fmt.Errorf("failed to update event capacity: %w", err)
	}

	return expectOne(res)
}

func (s *Storage) releaseSeat(ctx context.Context, tx *sql.Tx, eventID string) error {
	query := `
		UPDATE events
		SET current_registrations = current_registrations - 1, updated_at = ?
		WHERE id = ? AND current_registrations > 0`

	res, err := tx.ExecContext(ctx, s.q(query), s.now(), eventID)
	if err != nil {
		return fmt.Errorf("failed to update event capacity: %w", err)
	}

	released, err := expectOne(res)
	if err != nil {
		return err
	}
	if !released {
		// Either the event is gone or the counter is already zero.
		if _, err = s.getEvent(ctx, tx, "id", eventID, false); err != nil {
			return err
		}
	}

	return nil
}

// CreateRegistration admits r to its event. The seat check and the counter
// increment are one conditional update; when no seat is left the
// registration is stored as WAITLIST without touching the counter.
func (s *Storage) CreateRegistration(ctx context.Context, r models.Registration) (*models.Registration, error) {
	const op = "storage.sqlstore.CreateRegistration"

	now := s.now()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		seated, err := s.takeSeat(ctx, tx, r.EventID, true)
		if err != nil {
			return err
		}

		if !seated {
			event, err := s.getEvent(ctx, tx, "id", r.EventID, false)
			if err != nil {
				return err
			}
			if !event.IsActive {
				return storage.ErrEventInactive
			}
		}

		r.Status = workflow.InitialStatus(seated)

		query := `
			INSERT INTO registrations (` + registrationColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		_, err = tx.ExecContext(ctx, s.q(query),
			r.ID, r.EventID, r.Name, r.Email, r.Phone, r.Organization, r.DietaryRestrictions,
			r.AccessibilityNeeds, r.Status, r.CreatedAt, r.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create registration: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &r, nil
}

// UpdateRegistrationStatus moves a registration to status and adjusts the
// event counter in the same transaction. Entering a counted status on a
// full event fails with ErrCapacityExceeded and changes nothing.
func (s *Storage) UpdateRegistrationStatus(ctx context.Context, id string, status models.Status) (*models.Registration, error) {
	const op = "storage.sqlstore.UpdateRegistrationStatus"

	var updated *models.Registration

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := s.getRegistration(ctx, tx, id, true)
		if err != nil {
			return err
		}

		delta, err := workflow.Transition(current.Status, status)
		if err != nil {
			return err
		}

		switch delta {
		case 1:
			seated, err := s.takeSeat(ctx, tx, current.EventID, false)
			if err != nil {
				return err
			}
			if !seated {
				if _, err = s.getEvent(ctx, tx, "id", current.EventID, false); err != nil {
					return err
				}
				return storage.ErrCapacityExceeded
			}
		case -1:
			if err = s.releaseSeat(ctx, tx, current.EventID); err != nil {
				return err
			}
		}

		now := s.now()
		query := `UPDATE registrations SET status = ?, updated_at = ? WHERE id = ?`
		if _, err = tx.ExecContext(ctx, s.q(query), status, now, id); err != nil {
			return fmt.Errorf("failed to update registration status: %w", err)
		}

		current.Status = status
		current.UpdatedAt = now
		updated = current

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// DeleteRegistration removes the registration and gives its seat back when
// it held one.
func (s *Storage) DeleteRegistration(ctx context.Context, id string) error {
	const op = "storage.sqlstore.DeleteRegistration"

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := s.getRegistration(ctx, tx, id, true)
		if err != nil {
			return err
		}

		if current.Status.Counted() {
			if err = s.releaseSeat(ctx, tx, current.EventID); err != nil {
				return err
			}
		}

		if _, err = tx.ExecContext(ctx, s.q(`DELETE FROM registrations WHERE id = ?`), id); err != nil {
			return fmt.Errorf("failed to delete registration: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetRegistration(ctx context.Context, id string) (*models.Registration, error) {
	const op = "storage.sqlstore.GetRegistration"

	r, err := s.getRegistration(ctx, s.DB, id, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

func (s *Storage) getRegistration(ctx context.Context, db queryer, id string, lock bool) (*models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = ?`
	if lock {
		query += s.dialect.ForUpdate
	}

	r, err := scanRegistration(db.QueryRowContext(ctx, s.q(query), id))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return r, nil
}

// GetRegistrations lists registrations in creation order, narrowed by filter.
func (s *Storage) GetRegistrations(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, error) {
	const op = "storage.sqlstore.GetRegistrations"

	var conds []string
	var args []any

	if filter.EventID != "" {
		conds = append(conds, "event_id = ?")
		args = append(args, filter.EventID)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if !filter.From.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, filter.From.UTC())
	}
	if !filter.To.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, filter.To.UTC())
	}

	query := `SELECT ` + registrationColumns + ` FROM registrations`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := s.DB.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get registrations: %w", op, err)
	}
	defer rows.Close()

	registrations := []models.Registration{}
	for rows.Next() {
		r, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan registration: %w", op, err)
		}
		registrations = append(registrations, *r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating registrations: %w", op, err)
	}

	return registrations, nil
}
