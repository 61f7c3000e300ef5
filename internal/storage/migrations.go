package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Catalog schema",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS categories (
					id TEXT PRIMARY KEY,
					name_en TEXT NOT NULL,
					name_ne TEXT NOT NULL DEFAULT '',
					icon_ref TEXT NOT NULL DEFAULT '',
					color_token TEXT NOT NULL DEFAULT '',
					position INTEGER NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS origin_types (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
					type TEXT NOT NULL,
					label_en TEXT NOT NULL DEFAULT '',
					label_ne TEXT NOT NULL DEFAULT '',
					position INTEGER NOT NULL,
					UNIQUE (category_id, type)
				)`,
				`CREATE TABLE IF NOT EXISTS sub_categories (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					origin_type_id INTEGER NOT NULL REFERENCES origin_types(id) ON DELETE CASCADE,
					name TEXT NOT NULL,
					position INTEGER NOT NULL,
					UNIQUE (origin_type_id, name)
				)`,
				`CREATE INDEX idx_origin_types_category ON origin_types(category_id)`,
				`CREATE INDEX idx_sub_categories_origin ON sub_categories(origin_type_id)`,
			)
		},
	},
	{
		Version:     2,
		Description: "Products",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS products (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					category_id TEXT NOT NULL,
					origin_type TEXT NOT NULL DEFAULT '',
					sub_category TEXT NOT NULL DEFAULT '',
					price_paisa INTEGER NOT NULL DEFAULT 0,
					volume_ml INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_products_filter ON products(category_id, origin_type, sub_category)`,
			)
		},
	},
	{
		Version:     3,
		Description: "Saved filter sessions",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS filter_sessions (
					name TEXT PRIMARY KEY,
					category TEXT NOT NULL DEFAULT '',
					origin_type TEXT NOT NULL DEFAULT '',
					sub_category TEXT NOT NULL DEFAULT '',
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			)
		},
	},
}

func execAll(tx *sql.Tx, queries ...string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Migrate applies all pending migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
