package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/model"
)

// DefaultSession names the filter session the browser restores on start.
const DefaultSession = "default"

// SaveFilter remembers the filter under a session name.
func (s *SQLiteStorage) SaveFilter(ctx context.Context, name string, filter model.FilterState) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}
	if !filter.Refines() {
		return fmt.Errorf("%w: %+v", ErrInvalidFilter, filter)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO filter_sessions (name, category, origin_type, sub_category, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			category = excluded.category,
			origin_type = excluded.origin_type,
			sub_category = excluded.sub_category,
			updated_at = CURRENT_TIMESTAMP`,
		name, filter.Category, filter.OriginType, filter.SubCategory)
	if err != nil {
		return fmt.Errorf("failed to save filter session: %w", err)
	}
	return nil
}

// LoadFilter returns the filter saved under name, or common.ErrNotFound.
func (s *SQLiteStorage) LoadFilter(ctx context.Context, name string) (model.FilterState, error) {
	if err := validateContext(ctx); err != nil {
		return model.FilterState{}, err
	}

	var f model.FilterState
	err := s.db.QueryRowContext(ctx, `
		SELECT category, origin_type, sub_category
		FROM filter_sessions
		WHERE name = ?`, name).Scan(&f.Category, &f.OriginType, &f.SubCategory)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FilterState{}, fmt.Errorf("filter session %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return model.FilterState{}, fmt.Errorf("failed to load filter session: %w", err)
	}
	return f, nil
}
