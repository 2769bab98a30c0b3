package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"churchEvents/internal/models"
	"churchEvents/internal/storage"
)

const uploadColumns = `id, filename, original_name, mimetype, size, path, url, category, is_used, created_at`

func scanUpload(row interface{ Scan(...any) error }) (*models.Upload, error) {
	var u models.Upload
	err := row.Scan(
		&u.ID,
		&u.Filename,
		&u.OriginalName,
		&u.Mimetype,
		&u.Size,
		&u.Path,
		&u.URL,
		&u.Category,
		&u.IsUsed,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()

	return &u, nil
}

// CreateUpload records an already stored file. The caller picks the id so
// that it can match the file name on disk.
func (s *Storage) CreateUpload(ctx context.Context, u models.Upload) (*models.Upload, error) {
	const op = "storage.sqlstore.CreateUpload"

	u.CreatedAt = s.now()

	query := `INSERT INTO uploads (` + uploadColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.DB.ExecContext(ctx, s.q(query),
		u.ID, u.Filename, u.OriginalName, u.Mimetype, u.Size, u.Path, u.URL, u.Category, u.IsUsed, u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}

func (s *Storage) GetUploads(ctx context.Context, category string) ([]models.Upload, error) {
	const op = "storage.sqlstore.GetUploads"

	query := `SELECT ` + uploadColumns + ` FROM uploads`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get uploads: %w", op, err)
	}
	defer rows.Close()

	uploads := []models.Upload{}
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan upload: %w", op, err)
		}
		uploads = append(uploads, *u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating uploads: %w", op, err)
	}

	return uploads, nil
}

// DeleteUpload removes the record and returns it so the caller can remove
// the stored file.
func (s *Storage) DeleteUpload(ctx context.Context, id string) (*models.Upload, error) {
	const op = "storage.sqlstore.DeleteUpload"

	var deleted *models.Upload

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `SELECT ` + uploadColumns + ` FROM uploads WHERE id = ?` + s.dialect.ForUpdate

		u, err := scanUpload(tx.QueryRowContext(ctx, s.q(query), id))
		if err != nil {
			if isNoRows(err) {
				return storage.ErrUploadNotFound
			}
			return fmt.Errorf("failed to get upload: %w", err)
		}

		if _, err = tx.ExecContext(ctx, s.q(`DELETE FROM uploads WHERE id = ?`), id); err != nil {
			return fmt.Errorf("failed to delete upload: %w", err)
		}

		deleted = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

func (s *Storage) SetUploadUsed(ctx context.Context, id string, used bool) (*models.Upload, error) {
	const op = "storage.sqlstore.SetUploadUsed"

	res, err := s.DB.ExecContext(ctx, s.q(`UPDATE uploads SET is_used = ? WHERE id = ?`), used, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := expectOne(res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUploadNotFound)
	}

	u, err := scanUpload(s.DB.QueryRowContext(ctx, s.q(`SELECT `+uploadColumns+` FROM uploads WHERE id = ?`), id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}
