package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/model"
)

const yamlCatalog = `
categories:
  - id: whisky
    display_name:
      en: Whisky
      ne: व्हिस्की
    color_token: amber
    origin_types:
      - type: domestic
        display_label: {en: Domestic}
      - type: imported
        display_label: {en: Imported, ne: आयातित}
        sub_categories:
          - name: single malt
  - id: mixers
    display_name: {en: Mixers}
products:
  - id: wh-1
    name: Highland Cask
    category_id: whisky
    origin_type: imported
    sub_category: single malt
    price_paisa: 1450000
    volume_ml: 700
`

const jsonCatalog = `{
  "categories": [
    {
      "id": "whisky",
      "displayName": {"en": "Whisky", "ne": "व्हिस्की"},
      "iconRef": "glass",
      "originTypes": [
        {"type": "imported", "displayLabel": {"en": "Imported"}, "subCategories": [{"name": "blended"}]}
      ]
    }
  ]
}`

func TestDecode(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		doc, err := Decode(strings.NewReader(yamlCatalog))
		require.NoError(t, err)
		require.Len(t, doc.Categories, 2)

		whisky := doc.Categories[0]
		assert.Equal(t, "व्हिस्की", whisky.DisplayName.NE)
		assert.Equal(t, "amber", whisky.ColorToken)
		require.Len(t, whisky.OriginTypes, 2)
		assert.Equal(t, "आयातित", whisky.OriginTypes[1].DisplayLabel.NE)
		assert.Equal(t, []model.SubCategory{{Name: "single malt"}}, whisky.OriginTypes[1].SubCategories)

		require.Len(t, doc.Products, 1)
		assert.Equal(t, int64(1450000), doc.Products[0].PricePaisa)
		assert.Equal(t, "single malt", doc.Products[0].SubCategory)
	})

	t.Run("json", func(t *testing.T) {
		doc, err := Decode(strings.NewReader(jsonCatalog))
		require.NoError(t, err)
		require.Len(t, doc.Categories, 1)
		assert.Equal(t, "glass", doc.Categories[0].IconRef)
		assert.Equal(t, "blended", doc.Categories[0].OriginTypes[0].SubCategories[0].Name)
	})

	t.Run("invalid catalog", func(t *testing.T) {
		_, err := Decode(strings.NewReader("categories:\n  - id: rum\n  - id: rum\n"))
		assert.ErrorIs(t, err, common.ErrInvalidCatalog)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Decode(strings.NewReader("{not json"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0600))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Categories, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Seed()))

	doc, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Seed(), doc)
}
