package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/selector"
	"github.com/Veraticus/bottleshop/internal/tui/themes"
)

// DefaultColumnWidth is the width of one menu column in cells.
const DefaultColumnWidth = 22

type hitKind int

const (
	hitNone hitKind = iota
	hitToggle
	hitCategory
	hitOrigin
	hitSub
)

// hit is the row under a screen position.
type hit struct {
	category string
	origin   string
	sub      string
	kind     hitKind
}

// DesktopMenuModel renders the category column with its flyouts to the
// right and translates mouse motion and presses into DesktopController calls.
type DesktopMenuModel struct {
	sel      *selector.Selector
	theme    themes.Theme
	locale   model.Locale
	x        int
	y        int
	colWidth int
	showAll  bool
}

// desktopLayout is the geometry of the currently drawn columns.
type desktopLayout struct {
	categories []model.Category
	origins    []model.OriginType
	subs       []model.SubCategory
	flyCat     string
	flyOrigin  string
	catRow     int
	originRow  int
}

// NewDesktopMenu creates the flyout menu for sel.
func NewDesktopMenu(sel *selector.Selector, theme themes.Theme) DesktopMenuModel {
	return DesktopMenuModel{
		sel:      sel,
		theme:    theme,
		locale:   model.LocaleEnglish,
		colWidth: DefaultColumnWidth,
		showAll:  true,
	}
}

// SetPosition places the menu's top-left corner on screen.
func (m *DesktopMenuModel) SetPosition(x, y int) {
	m.x, m.y = x, y
}

// SetLocale switches the label language.
func (m *DesktopMenuModel) SetLocale(l model.Locale) {
	m.locale = l
}

// SetShowAll controls whether the "all" row is listed.
func (m *DesktopMenuModel) SetShowAll(show bool) {
	m.showAll = show
}

// Width is the width of the menu with both flyouts drawn.
func (m DesktopMenuModel) Width() int {
	return 3 * m.colWidth
}

// Bounds returns the screen cells the menu currently occupies.
func (m DesktopMenuModel) Bounds() selector.Region {
	l := m.layout()
	region := selector.Region{
		{X: m.x, Y: m.y, Width: m.colWidth, Height: len(l.categories)},
	}
	if l.catRow >= 0 {
		region = append(region, selector.Rect{
			X: m.x + m.colWidth, Y: m.y + l.catRow,
			Width: m.colWidth, Height: len(l.origins),
		})
	}
	if l.originRow >= 0 {
		region = append(region, selector.Rect{
			X: m.x + 2*m.colWidth, Y: m.y + l.catRow + l.originRow,
			Width: m.colWidth, Height: len(l.subs),
		})
	}
	return region
}

// Contains implements selector.Container against the live layout.
func (m DesktopMenuModel) Contains(x, y int) bool {
	return m.Bounds().Contains(x, y)
}

// Update handles mouse messages. Presses outside the menu are left to the
// caller, which routes them to the dismisser.
func (m DesktopMenuModel) Update(msg tea.Msg) (DesktopMenuModel, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}
	d := m.sel.Desktop()
	h := m.hitTest(mouse.X, mouse.Y)

	switch mouse.Action {
	case tea.MouseActionMotion:
		switch h.kind {
		case hitCategory:
			d.HoverCategory(h.category)
		case hitOrigin:
			d.HoverOrigin(h.category, h.origin)
		case hitSub:
			d.HoverSubCategory(h.category, h.origin)
		default:
			if cat, _ := d.Hovered(); cat != "" {
				d.LeaveContainer()
			}
		}

	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch h.kind {
		case hitCategory:
			d.ClickCategory(h.category)
		case hitOrigin:
			d.ClickOrigin(h.category, h.origin)
		case hitSub:
			d.ClickSubCategory(h.category, h.origin, h.sub)
		}
	}
	return m, nil
}

// View renders the menu as a block exactly Width() cells wide.
func (m DesktopMenuModel) View() string {
	l := m.layout()
	height := len(l.categories)
	if l.catRow >= 0 {
		height = max(height, l.catRow+len(l.origins))
	}
	if l.originRow >= 0 {
		height = max(height, l.catRow+l.originRow+len(l.subs))
	}

	lines := make([]string, height)
	for row := range lines {
		var b strings.Builder
		if row < len(l.categories) {
			b.WriteString(m.renderCategory(l.categories[row], l))
		} else {
			b.WriteString(blank(m.colWidth))
		}

		if i := row - l.catRow; l.catRow >= 0 && i >= 0 && i < len(l.origins) {
			b.WriteString(m.renderOrigin(l.flyCat, l.origins[i], l))
		} else {
			b.WriteString(blank(m.colWidth))
		}

		if i := row - l.catRow - l.originRow; l.originRow >= 0 && i >= 0 && i < len(l.subs) {
			b.WriteString(m.renderSub(l.flyCat, l.flyOrigin, l.subs[i]))
		} else {
			b.WriteString(blank(m.colWidth))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (m DesktopMenuModel) categories() []model.Category {
	catalog := m.sel.Catalog()
	out := make([]model.Category, 0, len(catalog))
	for _, cat := range catalog {
		if cat.IsAll() && !m.showAll {
			continue
		}
		out = append(out, cat)
	}
	return out
}

func (m DesktopMenuModel) layout() desktopLayout {
	l := desktopLayout{categories: m.categories(), catRow: -1, originRow: -1}

	catID, originType := m.sel.Desktop().Flyout()
	if catID == "" {
		return l
	}
	for i, cat := range l.categories {
		if cat.ID != catID || len(cat.OriginTypes) == 0 {
			continue
		}
		l.flyCat = cat.ID
		l.catRow = i
		l.origins = cat.OriginTypes
		for j, origin := range cat.OriginTypes {
			if origin.Type == originType && origin.HasSubCategories() {
				l.flyOrigin = origin.Type
				l.originRow = j
				l.subs = origin.SubCategories
			}
		}
		break
	}
	return l
}

func (m DesktopMenuModel) hitTest(x, y int) hit {
	lx, ly := x-m.x, y-m.y
	if lx < 0 || ly < 0 || m.colWidth <= 0 {
		return hit{}
	}
	l := m.layout()

	switch lx / m.colWidth {
	case 0:
		if ly < len(l.categories) {
			return hit{kind: hitCategory, category: l.categories[ly].ID}
		}
	case 1:
		if i := ly - l.catRow; l.catRow >= 0 && i >= 0 && i < len(l.origins) {
			return hit{kind: hitOrigin, category: l.flyCat, origin: l.origins[i].Type}
		}
	case 2:
		if i := ly - l.catRow - l.originRow; l.originRow >= 0 && i >= 0 && i < len(l.subs) {
			return hit{kind: hitSub, category: l.flyCat, origin: l.flyOrigin, sub: l.subs[i].Name}
		}
	}
	return hit{}
}

func (m DesktopMenuModel) renderCategory(cat model.Category, l desktopLayout) string {
	selected := m.sel.IsSelected(cat.ID)
	trailing := " "
	if cat.Expandable() {
		trailing = markFlyout
	}
	text := marker(selected) + " " + themes.GetCategoryIcon(cat.IconRef) + " " + selector.CategoryLabel(cat, m.locale)

	style := m.theme.Normal.Foreground(m.theme.Token(cat.ColorToken))
	switch {
	case selected:
		style = m.theme.Selected
	case cat.ID == l.flyCat:
		style = m.theme.Highlighted
	}
	return style.Render(cell(text, trailing, m.colWidth))
}

func (m DesktopMenuModel) renderOrigin(catID string, origin model.OriginType, l desktopLayout) string {
	f := m.sel.Filter()
	selected := m.sel.Catalog().Admits(f) && f.Category == catID && f.OriginType == origin.Type
	trailing := " "
	if origin.HasSubCategories() {
		trailing = markFlyout
	}
	text := marker(selected) + " " + selector.OriginLabel(origin, m.locale)

	style := m.theme.Normal
	switch {
	case selected:
		style = m.theme.Selected
	case origin.Type == l.flyOrigin:
		style = m.theme.Highlighted
	}
	return style.Render(cell(text, trailing, m.colWidth))
}

func (m DesktopMenuModel) renderSub(catID, originType string, sub model.SubCategory) string {
	f := m.sel.Filter()
	selected := m.sel.Catalog().Admits(f) &&
		f == model.FilterState{Category: catID, OriginType: originType, SubCategory: sub.Name}

	style := m.theme.Normal
	if selected {
		style = m.theme.Selected
	}
	return style.Render(cell(marker(selected)+" "+sub.Label(), "", m.colWidth))
}
