package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/bottleshop/internal/model"
)

// SaveProducts upserts products.
func (s *SQLiteStorage) SaveProducts(ctx context.Context, products []model.Product) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProducts(products); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO products (id, name, category_id, origin_type, sub_category, price_paisa, volume_ml)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				category_id = excluded.category_id,
				origin_type = excluded.origin_type,
				sub_category = excluded.sub_category,
				price_paisa = excluded.price_paisa,
				volume_ml = excluded.volume_ml`)
		if err != nil {
			return fmt.Errorf("failed to prepare product insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range products {
			if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.CategoryID, p.OriginType, p.SubCategory, p.PricePaisa, p.VolumeML); err != nil {
				return fmt.Errorf("failed to save product %q: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("saved products", "count", len(products))
	return nil
}

// GetProducts returns the products under a filter, ordered by name.
// Filters that break the refinement chain are rejected.
func (s *SQLiteStorage) GetProducts(ctx context.Context, filter model.FilterState) ([]model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !filter.Refines() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidFilter, filter)
	}

	var (
		where []string
		args  []any
	)
	if filter.Category != "" {
		where = append(where, "category_id = ?")
		args = append(args, filter.Category)
	}
	if filter.OriginType != "" {
		where = append(where, "origin_type = ?")
		args = append(args, filter.OriginType)
	}
	if filter.SubCategory != "" {
		where = append(where, "sub_category = ?")
		args = append(args, filter.SubCategory)
	}

	query := `
		SELECT id, name, category_id, origin_type, sub_category, price_paisa, volume_ml
		FROM products`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID, &p.OriginType, &p.SubCategory, &p.PricePaisa, &p.VolumeML); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
