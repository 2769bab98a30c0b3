package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"churchEvents/internal/models"
	"churchEvents/internal/storage"
)

const configColumns = `config_key, value, type, category, description, is_public, updated_at`

func scanConfig(row interface{ Scan(...any) error }) (*models.SiteConfig, error) {
	var c models.SiteConfig
	err := row.Scan(&c.Key, &c.Value, &c.Type, &c.Category, &c.Description, &c.IsPublic, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.UpdatedAt = c.UpdatedAt.UTC()

	return &c, nil
}

func (s *Storage) CreateConfig(ctx context.Context, c models.SiteConfig) (*models.SiteConfig, error) {
	const op = "storage.sqlstore.CreateConfig"

	c.UpdatedAt = s.now()

	query := `INSERT INTO site_configs (` + configColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.DB.ExecContext(ctx, s.q(query),
		c.Key, c.Value, c.Type, c.Category, c.Description, c.IsPublic, c.UpdatedAt,
	)
	if err != nil {
		if s.dialect.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConfigExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

// UpdateConfigs sets the value of every key in values inside one
// transaction. Any unknown key or failed check rolls the batch back.
func (s *Storage) UpdateConfigs(ctx context.Context, values map[string]string, check storage.ConfigCheck) ([]models.SiteConfig, error) {
	const op = "storage.sqlstore.UpdateConfigs"

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updated := make([]models.SiteConfig, 0, len(keys))

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		now := s.now()

		for _, key := range keys {
			current, err := s.getConfig(ctx, tx, key, true)
			if err != nil {
				return fmt.Errorf("%w: %s", err, key)
			}

			if check != nil {
				if err = check(*current, values[key]); err != nil {
					return err
				}
			}

			query := `UPDATE site_configs SET value = ?, updated_at = ? WHERE config_key = ?`
			if _, err = tx.ExecContext(ctx, s.q(query), values[key], now, key); err != nil {
				return fmt.Errorf("failed to update config %s: %w", key, err)
			}

			current.Value = values[key]
			current.UpdatedAt = now
			updated = append(updated, *current)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Storage) DeleteConfig(ctx context.Context, key string) error {
	const op = "storage.sqlstore.DeleteConfig"

	res, err := s.DB.ExecContext(ctx, s.q(`DELETE FROM site_configs WHERE config_key = ?`), key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	deleted, err := expectOne(res)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !deleted {
		return fmt.Errorf("%s: %w", op, storage.ErrConfigNotFound)
	}

	return nil
}

func (s *Storage) GetConfig(ctx context.Context, key string) (*models.SiteConfig, error) {
	const op = "storage.sqlstore.GetConfig"

	c, err := s.getConfig(ctx, s.DB, key, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Storage) getConfig(ctx context.Context, db queryer, key string, lock bool) (*models.SiteConfig, error) {
	query := `SELECT ` + configColumns + ` FROM site_configs WHERE config_key = ?`
	if lock {
		query += s.dialect.ForUpdate
	}

	c, err := scanConfig(db.QueryRowContext(ctx, s.q(query), key))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	return c, nil
}

func (s *Storage) GetConfigs(ctx context.Context) ([]models.SiteConfig, error) {
	return s.listConfigs(ctx, "storage.sqlstore.GetConfigs", "")
}

func (s *Storage) GetPublicConfigs(ctx context.Context) ([]models.SiteConfig, error) {
	return s.listConfigs(ctx, "storage.sqlstore.GetPublicConfigs", "is_public = ?", true)
}

// GetConfigsByCategory lists the public settings of category.
func (s *Storage) GetConfigsByCategory(ctx context.Context, category string) ([]models.SiteConfig, error) {
	return s.listConfigs(ctx, "storage.sqlstore.GetConfigsByCategory", "category = ? AND is_public = ?", category, true)
}

func (s *Storage) listConfigs(ctx context.Context, op, cond string, args ...any) ([]models.SiteConfig, error) {
	query := `SELECT ` + configColumns + ` FROM site_configs`
	if cond != "" {
		query += ` WHERE ` + cond
	}
	query += ` ORDER BY category ASC, config_key ASC`

	rows, err := s.DB.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get configs: %w", op, err)
	}
	defer rows.Close()

	configs := []models.SiteConfig{}
	for rows.Next() {
		c, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan config: %w", op, err)
		}
		configs = append(configs, *c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating configs: %w", op, err)
	}

	return configs, nil
}
