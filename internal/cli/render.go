package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/selector"
)

// RenderCatalogTree renders the catalog as an indented tree. The "all"
// pseudo category is skipped.
func RenderCatalogTree(catalog model.Catalog, locale model.Locale) string {
	var b strings.Builder
	for _, cat := range catalog {
		if cat.IsAll() {
			continue
		}
		b.WriteString(BoldStyle.Render(selector.CategoryLabel(cat, locale)))
		b.WriteString(SubtleStyle.Render(" (" + cat.ID + ")"))
		b.WriteByte('\n')

		for i, origin := range cat.OriginTypes {
			branch, stem := "├─ ", "│  "
			if i == len(cat.OriginTypes)-1 {
				branch, stem = "└─ ", "   "
			}
			b.WriteString(branch + selector.OriginLabel(origin, locale) + "\n")

			for j, sub := range origin.SubCategories {
				leaf := "├─ "
				if j == len(origin.SubCategories)-1 {
					leaf = "└─ "
				}
				b.WriteString(stem + leaf + sub.Label() + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderProductTable renders products as aligned columns.
func RenderProductTable(products []model.Product) string {
	if len(products) == 0 {
		return SubtleStyle.Render("No products match this filter")
	}

	headers := []string{"NAME", "CATEGORY", "PRICE", "VOLUME"}
	rows := make([][]string, len(products))
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for i, p := range products {
		rows[i] = []string{
			p.Name,
			model.FilterState{Category: p.CategoryID, OriginType: p.OriginType, SubCategory: p.SubCategory}.String(),
			p.Price(),
			fmt.Sprintf("%dml", p.VolumeML),
		}
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, TableHeaderStyle.Render(joinRow(headers, widths)))
	for _, row := range rows {
		lines = append(lines, joinRow(row, widths))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func joinRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
