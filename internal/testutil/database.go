// Package testutil provides test utilities for the bottleshop project: an
// isolated in-memory store and a fluent builder for catalog documents.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/bottleshop/internal/catalog"
	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database holding doc. A nil doc
// leaves the database empty. Cleanup is registered on t.
//
// Example:
//
//	db := testutil.SetupTestDB(t,
//		testutil.NewCatalogBuilder(t).
//			WithSeed().
//			Build(),
//	)
func SetupTestDB(t *testing.T, doc *catalog.Document) *TestDB {
	t.Helper()

	ctx := context.Background()
	store, err := storage.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if doc != nil {
		if err := store.ReplaceCatalog(ctx, doc.Categories); err != nil {
			t.Fatalf("failed to seed catalog: %v", err)
		}
		if len(doc.Products) > 0 {
			if err := store.SaveProducts(ctx, doc.Products); err != nil {
				t.Fatalf("failed to seed products: %v", err)
			}
		}
	}

	return &TestDB{Storage: store, t: t}
}

// MustGetCategory returns the stored category with the given id or fails the test.
func (db *TestDB) MustGetCategory(id string) model.Category {
	db.t.Helper()
	stored, err := db.Storage.GetCatalog(context.Background())
	if err != nil {
		db.t.Fatalf("failed to read catalog: %v", err)
	}
	cat, ok := stored.FindCategory(id)
	if !ok {
		db.t.Fatalf("category %q not found in test data", id)
	}
	return cat
}

// MustGetProducts returns the stored products under filter or fails the test.
func (db *TestDB) MustGetProducts(filter model.FilterState) []model.Product {
	db.t.Helper()
	products, err := db.Storage.GetProducts(context.Background(), filter)
	if err != nil {
		db.t.Fatalf("failed to read products for %s: %v", filter, err)
	}
	return products
}
