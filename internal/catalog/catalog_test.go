package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/model"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		categories []model.Category
		wantErr    bool
	}{
		{
			name:       "seed catalog",
			categories: Seed().Categories,
		},
		{
			name:       "all entry is skipped",
			categories: []model.Category{model.AllCategory(), {ID: "rum"}},
		},
		{
			name:       "missing id",
			categories: []model.Category{{DisplayName: model.LocalizedText{EN: "Rum"}}},
			wantErr:    true,
		},
		{
			name:       "duplicate id",
			categories: []model.Category{{ID: "rum"}, {ID: "rum"}},
			wantErr:    true,
		},
		{
			name: "duplicate origin",
			categories: []model.Category{{ID: "rum", OriginTypes: []model.OriginType{
				{Type: model.OriginDomestic}, {Type: model.OriginDomestic},
			}}},
			wantErr: true,
		},
		{
			name: "unnamed sub-category",
			categories: []model.Category{{ID: "rum", OriginTypes: []model.OriginType{
				{Type: model.OriginImported, SubCategories: []model.SubCategory{{Name: " "}}},
			}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.categories)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidCatalog)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDocument(t *testing.T) {
	require.NoError(t, ValidateDocument(Seed()))

	doc := &Document{
		Categories: []model.Category{{ID: "rum"}},
		Products:   []model.Product{{ID: "p1", Name: "Gin", CategoryID: "gin"}},
	}
	assert.ErrorIs(t, ValidateDocument(doc), common.ErrInvalidCatalog)

	doc.Products[0] = model.Product{ID: "p1", CategoryID: "rum"}
	assert.ErrorIs(t, ValidateDocument(doc), common.ErrInvalidCatalog, "product without a name")
}

func TestDocument_Catalog(t *testing.T) {
	catalog := Seed().Catalog()
	require.NotEmpty(t, catalog)
	assert.True(t, catalog[0].IsAll())
	assert.True(t, catalog.Admits(model.FilterState{Category: "whisky", OriginType: model.OriginImported, SubCategory: "bourbon"}))
}
