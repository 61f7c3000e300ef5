package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/bottleshop/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidFilter   = errors.New("invalid filter")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCategories checks the structural rules the schema relies on.
func validateCategories(categories []model.Category) error {
	seen := make(map[string]struct{}, len(categories))
	for i, cat := range categories {
		if strings.TrimSpace(cat.ID) == "" {
			return fmt.Errorf("%w: category at index %d has no id", ErrInvalidCategory, i)
		}
		if _, dup := seen[cat.ID]; dup {
			return fmt.Errorf("%w: duplicate category id %q", ErrInvalidCategory, cat.ID)
		}
		seen[cat.ID] = struct{}{}

		origins := make(map[string]struct{}, len(cat.OriginTypes))
		for _, origin := range cat.OriginTypes {
			if strings.TrimSpace(origin.Type) == "" {
				return fmt.Errorf("%w: category %q has an origin without a type", ErrInvalidCategory, cat.ID)
			}
			if _, dup := origins[origin.Type]; dup {
				return fmt.Errorf("%w: category %q repeats origin %q", ErrInvalidCategory, cat.ID, origin.Type)
			}
			origins[origin.Type] = struct{}{}
		}
	}
	return nil
}

// validateProducts validates every product before a write.
func validateProducts(products []model.Product) error {
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrInvalidProduct, i, err)
		}
	}
	return nil
}
