package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		{
			ID:          "whisky",
			DisplayName: LocalizedText{EN: "Whisky", NE: "व्हिस्की"},
			OriginTypes: []OriginType{
				{Type: OriginDomestic, DisplayLabel: LocalizedText{EN: "Domestic", NE: "स्वदेशी"}},
				{
					Type:         OriginImported,
					DisplayLabel: LocalizedText{EN: "Imported", NE: "आयातित"},
					SubCategories: []SubCategory{
						{Name: "single malt"},
						{Name: "blended"},
					},
				},
			},
		},
		{
			ID:          "beer",
			DisplayName: LocalizedText{EN: "Beer"},
			OriginTypes: []OriginType{
				{Type: "craft"},
				{Type: OriginDomestic},
			},
		},
		{
			ID:          "wine",
			DisplayName: LocalizedText{EN: "Wine", NE: "वाइन"},
		},
	}
}

func TestLocalizedText_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		text   LocalizedText
		locale Locale
		want   string
	}{
		{name: "english", text: LocalizedText{EN: "Whisky", NE: "व्हिस्की"}, locale: LocaleEnglish, want: "Whisky"},
		{name: "nepali", text: LocalizedText{EN: "Whisky", NE: "व्हिस्की"}, locale: LocaleNepali, want: "व्हिस्की"},
		{name: "nepali falls back to english", text: LocalizedText{EN: "Beer"}, locale: LocaleNepali, want: "Beer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.text.Resolve(tt.locale))
		})
	}
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleNepali, ParseLocale("NE"))
	assert.Equal(t, LocaleEnglish, ParseLocale("en"))
	assert.Equal(t, LocaleEnglish, ParseLocale("fr"))
	assert.Equal(t, LocaleNepali, LocaleEnglish.Toggle())
	assert.Equal(t, LocaleEnglish, LocaleNepali.Toggle())
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "single malt", want: "Single malt"},
		{in: "Blended", want: "Blended"},
		{in: "", want: ""},
		{in: "élan", want: "Élan"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CapitalizeFirst(tt.in))
		})
	}
}

func TestCategory_ResolvedOriginType(t *testing.T) {
	catalog := testCatalog()

	beer, ok := catalog.FindCategory("beer")
	require.True(t, ok)
	origin, ok := beer.ResolvedOriginType()
	require.True(t, ok)
	assert.Equal(t, OriginDomestic, origin.Type, "domestic wins over list order")

	craftOnly := Category{ID: "cider", OriginTypes: []OriginType{{Type: "craft"}, {Type: "farmhouse"}}}
	origin, ok = craftOnly.ResolvedOriginType()
	require.True(t, ok)
	assert.Equal(t, "craft", origin.Type)

	wine, ok := catalog.FindCategory("wine")
	require.True(t, ok)
	_, ok = wine.ResolvedOriginType()
	assert.False(t, ok)
}

func TestCategory_Expandable(t *testing.T) {
	catalog := testCatalog().WithAll()

	for _, tt := range []struct {
		id   string
		want bool
	}{
		{id: "whisky", want: true},
		{id: "beer", want: false},
		{id: "wine", want: false},
		{id: AllCategoryID, want: false},
	} {
		cat, ok := catalog.FindCategory(tt.id)
		require.True(t, ok, tt.id)
		assert.Equal(t, tt.want, cat.Expandable(), tt.id)
	}
}

func TestCatalog_FindCategoryMissing(t *testing.T) {
	_, ok := testCatalog().FindCategory("rum")
	assert.False(t, ok)

	_, ok = testCatalog().FindCategory("")
	assert.False(t, ok)
}

func TestCatalog_WithAll(t *testing.T) {
	catalog := testCatalog().WithAll()
	require.Len(t, catalog, 4)
	assert.Equal(t, AllCategoryID, catalog[0].ID)

	again := catalog.WithAll()
	assert.Len(t, again, 4, "all is not prepended twice")
}
