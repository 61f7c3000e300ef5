package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/bottleshop/internal/model"
)

// GetCatalog returns every category with its origin types and
// sub-categories, in catalog order.
func (s *SQLiteStorage) GetCatalog(ctx context.Context) (model.Catalog, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name_en, name_ne, icon_ref, color_token
		FROM categories
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var catalog model.Catalog
	index := make(map[string]int)
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.DisplayName.EN, &cat.DisplayName.NE, &cat.IconRef, &cat.ColorToken); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		index[cat.ID] = len(catalog)
		catalog = append(catalog, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	if err := s.loadOrigins(ctx, catalog, index); err != nil {
		return nil, err
	}

	slog.Debug("retrieved catalog", "categories", len(catalog))
	return catalog, nil
}

func (s *SQLiteStorage) loadOrigins(ctx context.Context, catalog model.Catalog, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT o.category_id, o.type, o.label_en, o.label_ne, COALESCE(sc.name, '')
		FROM origin_types o
		LEFT JOIN sub_categories sc ON sc.origin_type_id = o.id
		ORDER BY o.category_id, o.position, sc.position`)
	if err != nil {
		return fmt.Errorf("failed to query origin types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			categoryID string
			origin     model.OriginType
			subName    string
		)
		if err := rows.Scan(&categoryID, &origin.Type, &origin.DisplayLabel.EN, &origin.DisplayLabel.NE, &subName); err != nil {
			return fmt.Errorf("failed to scan origin type: %w", err)
		}

		i, ok := index[categoryID]
		if !ok {
			continue
		}
		cat := &catalog[i]

		n := len(cat.OriginTypes)
		if n == 0 || cat.OriginTypes[n-1].Type != origin.Type {
			cat.OriginTypes = append(cat.OriginTypes, origin)
			n++
		}
		if subName != "" {
			last := &cat.OriginTypes[n-1]
			last.SubCategories = append(last.SubCategories, model.SubCategory{Name: subName})
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating origin types: %w", err)
	}
	return nil
}

// ReplaceCatalog swaps the stored catalog for categories in one transaction.
// The "all" pseudo category is never stored.
func (s *SQLiteStorage) ReplaceCatalog(ctx context.Context, categories []model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategories(categories); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, q := range []string{
			`DELETE FROM sub_categories`,
			`DELETE FROM origin_types`,
			`DELETE FROM categories`,
		} {
			if _, err := tx.ExecContext(ctx, q); err != nil {
				return fmt.Errorf("failed to clear catalog: %w", err)
			}
		}

		position := 0
		for _, cat := range categories {
			if cat.IsAll() {
				continue
			}
			if err := insertCategory(ctx, tx, cat, position); err != nil {
				return err
			}
			position++
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("replaced catalog", "categories", len(categories))
	return nil
}

func insertCategory(ctx context.Context, tx *sql.Tx, cat model.Category, position int) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO categories (id, name_en, name_ne, icon_ref, color_token, position)
		VALUES (?, ?, ?, ?, ?, ?)`,
		cat.ID, cat.DisplayName.EN, cat.DisplayName.NE, cat.IconRef, cat.ColorToken, position)
	if err != nil {
		return fmt.Errorf("failed to insert category %q: %w", cat.ID, err)
	}

	for i, origin := range cat.OriginTypes {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO origin_types (category_id, type, label_en, label_ne, position)
			VALUES (?, ?, ?, ?, ?)`,
			cat.ID, origin.Type, origin.DisplayLabel.EN, origin.DisplayLabel.NE, i)
		if err != nil {
			return fmt.Errorf("failed to insert origin %q of %q: %w", origin.Type, cat.ID, err)
		}

		originID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read origin id: %w", err)
		}

		for j, sub := range origin.SubCategories {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO sub_categories (origin_type_id, name, position)
				VALUES (?, ?, ?)`,
				originID, sub.Name, j); err != nil {
				return fmt.Errorf("failed to insert sub-category %q: %w", sub.Name, err)
			}
		}
	}
	return nil
}

// CategoryCount returns the number of stored categories.
func (s *SQLiteStorage) CategoryCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}
