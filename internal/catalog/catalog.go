// Package catalog loads the category catalog and product list from the
// local store, a catalog file or the storefront REST API.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/model"
)

// Document is a complete catalog as exchanged in files and over the wire.
type Document struct {
	Categories []model.Category `json:"categories" yaml:"categories"`
	Products   []model.Product  `json:"products,omitempty" yaml:"products,omitempty"`
}

// Catalog returns the document's categories with the "all" entry in front.
func (d *Document) Catalog() model.Catalog {
	return model.Catalog(d.Categories).WithAll()
}

// Validate checks the structural rules the selector and the store rely on.
// The "all" pseudo category may appear and is skipped.
func Validate(categories []model.Category) error {
	seen := make(map[string]struct{}, len(categories))
	for i, cat := range categories {
		if cat.IsAll() {
			continue
		}
		if strings.TrimSpace(cat.ID) == "" {
			return fmt.Errorf("%w: category at index %d has no id", common.ErrInvalidCatalog, i)
		}
		if _, dup := seen[cat.ID]; dup {
			return fmt.Errorf("%w: duplicate category id %q", common.ErrInvalidCatalog, cat.ID)
		}
		seen[cat.ID] = struct{}{}

		origins := make(map[string]struct{}, len(cat.OriginTypes))
		for _, origin := range cat.OriginTypes {
			if strings.TrimSpace(origin.Type) == "" {
				return fmt.Errorf("%w: category %q has an origin without a type", common.ErrInvalidCatalog, cat.ID)
			}
			if _, dup := origins[origin.Type]; dup {
				return fmt.Errorf("%w: category %q repeats origin %q", common.ErrInvalidCatalog, cat.ID, origin.Type)
			}
			origins[origin.Type] = struct{}{}

			for _, sub := range origin.SubCategories {
				if strings.TrimSpace(sub.Name) == "" {
					return fmt.Errorf("%w: %s/%s has an unnamed sub-category", common.ErrInvalidCatalog, cat.ID, origin.Type)
				}
			}
		}
	}
	return nil
}

// ValidateDocument validates the categories and every product. Products must
// point at a category in the document.
func ValidateDocument(doc *Document) error {
	if err := Validate(doc.Categories); err != nil {
		return err
	}

	catalog := model.Catalog(doc.Categories)
	for _, p := range doc.Products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %w", common.ErrInvalidCatalog, err)
		}
		if _, ok := catalog.FindCategory(p.CategoryID); !ok {
			return fmt.Errorf("%w: product %q references unknown category %q", common.ErrInvalidCatalog, p.ID, p.CategoryID)
		}
	}
	return nil
}
