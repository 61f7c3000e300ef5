package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/bottleshop/internal/catalog"
	"github.com/Veraticus/bottleshop/internal/model"
)

func TestScriptedSelection(t *testing.T) {
	seed := catalog.Seed().Catalog()

	tests := []struct {
		name string
		path []string
		want model.FilterState
	}{
		{
			name: "category with imported origin",
			path: []string{"whisky"},
			want: model.FilterState{Category: "whisky"},
		},
		{
			name: "domestic-only category auto-resolves",
			path: []string{"rum"},
			want: model.FilterState{Category: "rum", OriginType: model.OriginDomestic},
		},
		{
			name: "category without origins",
			path: []string{"mixers"},
			want: model.FilterState{Category: "mixers"},
		},
		{
			name: "origin with sub-categories",
			path: []string{"whisky", "imported"},
			want: model.FilterState{Category: "whisky", OriginType: model.OriginImported},
		},
		{
			name: "origin without sub-categories",
			path: []string{"whisky", "domestic"},
			want: model.FilterState{Category: "whisky", OriginType: model.OriginDomestic},
		},
		{
			name: "full depth",
			path: []string{"wine", "imported", "sparkling"},
			want: model.FilterState{Category: "wine", OriginType: model.OriginImported, SubCategory: "sparkling"},
		},
		{
			name: "unknown category",
			path: []string{"absinthe"},
			want: model.FilterState{},
		},
		{
			name: "unknown sub-category",
			path: []string{"whisky", "imported", "rye"},
			want: model.FilterState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scriptDesktop(seed, tt.path), "desktop")
			assert.Equal(t, tt.want, scriptMobile(seed, tt.path), "mobile")
		})
	}
}

func TestSaveInBatches(t *testing.T) {
	products := catalog.Seed().Products
	store := &recordingSaver{}

	var progressed int
	err := saveInBatches(context.Background(), store, products, 5, func(n int) error {
		progressed += n
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, len(products), progressed)
	assert.Equal(t, (len(products)+4)/5, store.calls)
	assert.Equal(t, products, store.saved)
}

type recordingSaver struct {
	saved []model.Product
	calls int
}

func (r *recordingSaver) SaveProducts(_ context.Context, products []model.Product) error {
	r.calls++
	r.saved = append(r.saved, products...)
	return nil
}

func TestSeedSummary(t *testing.T) {
	doc := catalog.Seed()
	out := seedSummary(doc)

	assert.Contains(t, out, "Sample catalog")
	assert.Contains(t, out, "╭", "rendered inside a rounded box")
	for _, cat := range doc.Categories {
		assert.Contains(t, out, cat.DisplayName.EN)
	}
	assert.Regexp(t, `Beer\s+2 products`, out)
}
