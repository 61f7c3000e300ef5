package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/selector"
	"github.com/Veraticus/bottleshop/internal/tui/themes"
)

// DefaultMobileWidth is the panel width used until the terminal size is known.
const DefaultMobileWidth = 40

// mobileRow is one line of the dropdown: the toggle or an accordion row.
type mobileRow struct {
	category model.Category
	origin   model.OriginType
	sub      model.SubCategory
	kind     hitKind
}

// MobileMenuModel renders the dropdown toggle and its accordion panel and
// translates presses into MobileController taps. Pointer motion is ignored.
type MobileMenuModel struct {
	sel     *selector.Selector
	theme   themes.Theme
	locale  model.Locale
	x       int
	y       int
	width   int
	showAll bool
}

// NewMobileMenu creates the dropdown menu for sel.
func NewMobileMenu(sel *selector.Selector, theme themes.Theme) MobileMenuModel {
	return MobileMenuModel{
		sel:     sel,
		theme:   theme,
		locale:  model.LocaleEnglish,
		width:   DefaultMobileWidth,
		showAll: true,
	}
}

// SetPosition places the toggle row's left edge on screen.
func (m *MobileMenuModel) SetPosition(x, y int) {
	m.x, m.y = x, y
}

// Resize sets the panel width.
func (m *MobileMenuModel) Resize(width int) {
	if width > 0 {
		m.width = width
	}
}

// SetLocale switches the label language.
func (m *MobileMenuModel) SetLocale(l model.Locale) {
	m.locale = l
}

// SetShowAll controls whether the "all" row is listed.
func (m *MobileMenuModel) SetShowAll(show bool) {
	m.showAll = show
}

// Height is the number of rows currently drawn, toggle included.
func (m MobileMenuModel) Height() int {
	return len(m.rows())
}

// Bounds returns the toggle plus the open panel.
func (m MobileMenuModel) Bounds() selector.Region {
	return selector.Region{{X: m.x, Y: m.y, Width: m.width, Height: m.Height()}}
}

// Contains implements selector.Container against the live layout.
func (m MobileMenuModel) Contains(x, y int) bool {
	return m.Bounds().Contains(x, y)
}

// Update handles left presses inside the menu.
func (m MobileMenuModel) Update(msg tea.Msg) (MobileMenuModel, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return m, nil
	}

	lx, ly := mouse.X-m.x, mouse.Y-m.y
	rows := m.rows()
	if lx < 0 || lx >= m.width || ly < 0 || ly >= len(rows) {
		return m, nil
	}

	c := m.sel.Mobile()
	row := rows[ly]
	switch row.kind {
	case hitToggle:
		c.ToggleDropdown()
	case hitCategory:
		c.TapCategory(row.category.ID)
	case hitOrigin:
		c.TapOrigin(row.category.ID, row.origin.Type)
	case hitSub:
		c.TapSubCategory(row.category.ID, row.origin.Type, row.sub.Name)
	}
	return m, nil
}

// View renders the toggle and, when open, the accordion.
func (m MobileMenuModel) View() string {
	rows := m.rows()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = m.renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func (m MobileMenuModel) rows() []mobileRow {
	rows := []mobileRow{{kind: hitToggle}}
	c := m.sel.Mobile()
	if !c.DropdownOpen() {
		return rows
	}

	expanded := c.Expanded()
	for _, cat := range m.sel.Catalog() {
		if cat.IsAll() && !m.showAll {
			continue
		}
		rows = append(rows, mobileRow{kind: hitCategory, category: cat})
		if !expanded.IsCategoryOpen(cat.ID) {
			continue
		}
		for _, origin := range cat.OriginTypes {
			rows = append(rows, mobileRow{kind: hitOrigin, category: cat, origin: origin})
			if !expanded.IsOriginOpen(cat.ID, origin.Type) {
				continue
			}
			for _, sub := range origin.SubCategories {
				rows = append(rows, mobileRow{kind: hitSub, category: cat, origin: origin, sub: sub})
			}
		}
	}
	return rows
}

func (m MobileMenuModel) renderRow(row mobileRow) string {
	c := m.sel.Mobile()
	f := m.sel.Filter()
	admitted := m.sel.Catalog().Admits(f)

	switch row.kind {
	case hitToggle:
		trailing := " " + markCollapsed
		if c.DropdownOpen() {
			trailing = " " + markExpanded
		}
		return m.theme.Bold.Render(cell("☰ "+m.sel.Summary(m.locale), trailing, m.width))

	case hitCategory:
		selected := m.sel.IsSelected(row.category.ID)
		trailing := ""
		if row.category.Expandable() {
			trailing = expander(c.Expanded().IsCategoryOpen(row.category.ID))
		}
		text := marker(selected) + " " + themes.GetCategoryIcon(row.category.IconRef) + " " +
			selector.CategoryLabel(row.category, m.locale)
		style := m.theme.Normal.Foreground(m.theme.Token(row.category.ColorToken))
		if selected {
			style = m.theme.Selected
		}
		return style.Render(cell(text, trailing, m.width))

	case hitOrigin:
		selected := admitted && f.Category == row.category.ID && f.OriginType == row.origin.Type
		trailing := ""
		if row.origin.HasSubCategories() {
			trailing = expander(c.Expanded().IsOriginOpen(row.category.ID, row.origin.Type))
		}
		style := m.theme.Normal
		if selected {
			style = m.theme.Selected
		}
		return style.Render(cell("  "+marker(selected)+" "+selector.OriginLabel(row.origin, m.locale), trailing, m.width))

	default:
		selected := admitted && f == model.FilterState{
			Category:    row.category.ID,
			OriginType:  row.origin.Type,
			SubCategory: row.sub.Name,
		}
		style := m.theme.Normal
		if selected {
			style = m.theme.Selected
		}
		return style.Render(cell("    "+marker(selected)+" "+row.sub.Label(), "", m.width))
	}
}

func expander(open bool) string {
	if open {
		return markExpanded
	}
	return markCollapsed
}
