package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/selector"
)

func testCatalog() model.Catalog {
	return model.Catalog{
		model.AllCategory(),
		{
			ID:          "whisky",
			DisplayName: model.LocalizedText{EN: "Whisky", NE: "व्हिस्की"},
			IconRef:     "whisky",
			ColorToken:  "amber",
			OriginTypes: []model.OriginType{
				{Type: model.OriginDomestic, DisplayLabel: model.LocalizedText{EN: "Domestic", NE: "स्वदेशी"}},
				{
					Type:         model.OriginImported,
					DisplayLabel: model.LocalizedText{EN: "Imported", NE: "आयातित"},
					SubCategories: []model.SubCategory{
						{Name: "single malt"},
						{Name: "blended"},
					},
				},
			},
		},
		{
			ID:          "beer",
			DisplayName: model.LocalizedText{EN: "Beer"},
			OriginTypes: []model.OriginType{{Type: model.OriginDomestic}},
		},
		{
			ID:          "wine",
			DisplayName: model.LocalizedText{EN: "Wine"},
		},
	}
}

func newSelector(t *testing.T) (*selector.Selector, *[]model.FilterState) {
	t.Helper()
	var changes []model.FilterState
	sel := selector.New(testCatalog(), selector.WithFilterChange(func(f model.FilterState) {
		changes = append(changes, f)
	}))
	t.Cleanup(sel.Close)
	return sel, &changes
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}
}
