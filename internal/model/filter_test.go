package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterState_Refines(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterState
		want   bool
	}{
		{name: "empty", filter: FilterState{}, want: true},
		{name: "category only", filter: FilterState{Category: "whisky"}, want: true},
		{name: "category and origin", filter: FilterState{Category: "whisky", OriginType: OriginImported}, want: true},
		{name: "full chain", filter: FilterState{Category: "whisky", OriginType: OriginImported, SubCategory: "blended"}, want: true},
		{name: "origin without category", filter: FilterState{OriginType: OriginImported}, want: false},
		{name: "sub without origin", filter: FilterState{Category: "whisky", SubCategory: "blended"}, want: false},
		{name: "sparse origin and sub", filter: FilterState{OriginType: OriginImported, SubCategory: "blended"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Refines())
		})
	}
}

func TestCatalog_Admits(t *testing.T) {
	catalog := testCatalog().WithAll()

	tests := []struct {
		name   string
		filter FilterState
		want   bool
	}{
		{name: "empty", filter: FilterState{}, want: true},
		{name: "known category", filter: FilterState{Category: "wine"}, want: true},
		{name: "unknown category", filter: FilterState{Category: "rum"}, want: false},
		{name: "all is not a filter value", filter: FilterState{Category: AllCategoryID}, want: false},
		{name: "known origin", filter: FilterState{Category: "beer", OriginType: "craft"}, want: true},
		{name: "unknown origin", filter: FilterState{Category: "beer", OriginType: OriginImported}, want: false},
		{name: "known sub", filter: FilterState{Category: "whisky", OriginType: OriginImported, SubCategory: "single malt"}, want: true},
		{name: "sub under wrong origin", filter: FilterState{Category: "whisky", OriginType: OriginDomestic, SubCategory: "single malt"}, want: false},
		{name: "broken chain", filter: FilterState{Category: "whisky", SubCategory: "single malt"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Admits(tt.filter))
		})
	}
}

func TestFilterState_String(t *testing.T) {
	assert.Equal(t, "all", FilterState{}.String())
	assert.Equal(t, "whisky", FilterState{Category: "whisky"}.String())
	assert.Equal(t, "whisky/imported/blended", FilterState{Category: "whisky", OriginType: "imported", SubCategory: "blended"}.String())
}

func TestProduct_Matches(t *testing.T) {
	p := Product{ID: "p1", Name: "Glen Test 12", CategoryID: "whisky", OriginType: OriginImported, SubCategory: "single malt"}

	assert.True(t, p.Matches(FilterState{}))
	assert.True(t, p.Matches(FilterState{Category: "whisky"}))
	assert.True(t, p.Matches(FilterState{Category: "whisky", OriginType: OriginImported}))
	assert.True(t, p.Matches(FilterState{Category: "whisky", OriginType: OriginImported, SubCategory: "single malt"}))
	assert.False(t, p.Matches(FilterState{Category: "beer"}))
	assert.False(t, p.Matches(FilterState{Category: "whisky", OriginType: OriginDomestic}))
	assert.False(t, p.Matches(FilterState{Category: "whisky", OriginType: OriginImported, SubCategory: "blended"}))
}

func TestProduct_Validate(t *testing.T) {
	assert.NoError(t, Product{ID: "p1", Name: "X", CategoryID: "beer"}.Validate())
	assert.Error(t, Product{Name: "X", CategoryID: "beer"}.Validate())
	assert.Error(t, Product{ID: "p1", CategoryID: "beer"}.Validate())
	assert.Error(t, Product{ID: "p1", Name: "X"}.Validate())
	assert.Error(t, Product{ID: "p1", Name: "X", CategoryID: "beer", SubCategory: "lager"}.Validate())
	assert.Error(t, Product{ID: "p1", Name: "X", CategoryID: "beer", PricePaisa: -1}.Validate())
	assert.Equal(t, "Rs 1250.05", Product{PricePaisa: 125005}.Price())
}
