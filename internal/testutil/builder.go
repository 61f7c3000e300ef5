package testutil

import (
	"testing"

	"github.com/Veraticus/bottleshop/internal/catalog"
	"github.com/Veraticus/bottleshop/internal/model"
)

// CatalogBuilder provides a fluent interface for constructing catalog
// documents. Build validates the result and fails the test when it is
// malformed.
type CatalogBuilder struct {
	t          *testing.T
	categories []model.Category
	products   []model.Product
}

// NewCatalogBuilder starts an empty catalog.
func NewCatalogBuilder(t *testing.T) *CatalogBuilder {
	t.Helper()
	return &CatalogBuilder{t: t}
}

// Domestic builds a domestic origin with the given sub-categories.
func Domestic(subs ...string) model.OriginType {
	return origin(model.OriginDomestic, subs)
}

// Imported builds an imported origin with the given sub-categories.
func Imported(subs ...string) model.OriginType {
	return origin(model.OriginImported, subs)
}

func origin(kind string, subs []string) model.OriginType {
	o := model.OriginType{Type: kind}
	for _, s := range subs {
		o.SubCategories = append(o.SubCategories, model.SubCategory{Name: s})
	}
	return o
}

// WithSeed adds the built-in sample catalog and its products.
func (b *CatalogBuilder) WithSeed() *CatalogBuilder {
	seed := catalog.Seed()
	b.categories = append(b.categories, seed.Categories...)
	b.products = append(b.products, seed.Products...)
	return b
}

// WithCategory adds a category whose display name is its capitalized id.
func (b *CatalogBuilder) WithCategory(id string, origins ...model.OriginType) *CatalogBuilder {
	b.categories = append(b.categories, model.Category{
		ID:          id,
		DisplayName: model.LocalizedText{EN: model.CapitalizeFirst(id)},
		OriginTypes: origins,
	})
	return b
}

// WithProduct adds a product placed at filter.
func (b *CatalogBuilder) WithProduct(id, name string, filter model.FilterState, pricePaisa int64) *CatalogBuilder {
	b.products = append(b.products, model.Product{
		ID:          id,
		Name:        name,
		CategoryID:  filter.Category,
		OriginType:  filter.OriginType,
		SubCategory: filter.SubCategory,
		PricePaisa:  pricePaisa,
		VolumeML:    750,
	})
	return b
}

// Build returns the validated document.
func (b *CatalogBuilder) Build() *catalog.Document {
	b.t.Helper()
	doc := &catalog.Document{
		Categories: append([]model.Category(nil), b.categories...),
		Products:   append([]model.Product(nil), b.products...),
	}
	if err := catalog.ValidateDocument(doc); err != nil {
		b.t.Fatalf("invalid test catalog: %v", err)
	}
	return doc
}
