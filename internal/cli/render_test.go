package cli

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/bottleshop/internal/model"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestRenderCatalogTree(t *testing.T) {
	catalog := model.Catalog{
		model.AllCategory(),
		{
			ID:          "whisky",
			DisplayName: model.LocalizedText{EN: "Whisky", NE: "व्हिस्की"},
			OriginTypes: []model.OriginType{
				{Type: model.OriginDomestic},
				{
					Type:          model.OriginImported,
					DisplayLabel:  model.LocalizedText{EN: "Imported", NE: "आयातित"},
					SubCategories: []model.SubCategory{{Name: "single malt"}, {Name: "blended"}},
				},
			},
		},
		{ID: "wine"},
	}

	lines := strings.Split(plain(RenderCatalogTree(catalog, model.LocaleEnglish)), "\n")
	assert.Equal(t, []string{
		"Whisky (whisky)",
		"├─ Domestic",
		"└─ Imported",
		"   ├─ Single malt",
		"   └─ Blended",
		"Wine (wine)",
	}, lines)

	nepali := plain(RenderCatalogTree(catalog, model.LocaleNepali))
	assert.Contains(t, nepali, "व्हिस्की (whisky)")
	assert.Contains(t, nepali, "└─ आयातित")
	assert.NotContains(t, nepali, "सबै")
}

func TestRenderProductTable(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Khukri XXX", CategoryID: "rum", OriginType: model.OriginDomestic, PricePaisa: 120050, VolumeML: 750},
		{ID: "2", Name: "Glenfiddich 12", CategoryID: "whisky", OriginType: model.OriginImported, SubCategory: "single malt", PricePaisa: 950000, VolumeML: 700},
	}

	lines := strings.Split(plain(RenderProductTable(products)), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "NAME")
	last := lines[len(lines)-1]
	assert.Contains(t, last, "Glenfiddich 12")
	assert.Contains(t, last, "whisky/imported/single malt")
	assert.Contains(t, last, "Rs 9500.00")
	assert.True(t, strings.HasSuffix(last, "700ml"))

	assert.Equal(t,
		strings.Index(lines[len(lines)-2], "rum"),
		strings.Index(last, "whisky"),
		"columns line up")

	assert.Contains(t, plain(RenderProductTable(nil)), "No products match this filter")
}
