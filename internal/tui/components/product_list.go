package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/tui/themes"
)

// ProductListModel is the product pane next to the filter menu.
type ProductListModel struct {
	theme    themes.Theme
	err      error
	up       key.Binding
	down     key.Binding
	summary  string
	products []model.Product
	filter   model.FilterState
	width    int
	height   int
	offset   int
	loading  bool
}

// NewProductList creates an empty product pane. up and down scroll it.
func NewProductList(theme themes.Theme, up, down key.Binding) ProductListModel {
	return ProductListModel{
		theme:   theme,
		up:      up,
		down:    down,
		width:   40,
		height:  10,
		loading: true,
	}
}

// Resize sets the pane size in cells, header included.
func (m *ProductListModel) Resize(width, height int) {
	m.width = max(width, 10)
	m.height = max(height, 3)
	m.clampOffset()
}

// SetSummary sets the breadcrumb shown in the header.
func (m *ProductListModel) SetSummary(summary string) {
	m.summary = summary
}

// Products returns the products on display.
func (m ProductListModel) Products() []model.Product {
	return m.products
}

// Filter returns the filter the products were loaded for.
func (m ProductListModel) Filter() model.FilterState {
	return m.filter
}

// Update handles loaded products and scrolling.
func (m ProductListModel) Update(msg tea.Msg) (ProductListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ProductsLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.products = msg.Products
			m.filter = msg.Filter
			m.offset = 0
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.up):
			m.offset--
		case key.Matches(msg, m.down):
			m.offset++
		}
		m.clampOffset()
	}
	return m, nil
}

// View renders the header and the visible slice of products.
func (m ProductListModel) View() string {
	lines := []string{
		m.theme.Title.Render(cell(m.summary, "", m.width)),
	}

	switch {
	case m.err != nil:
		lines = append(lines, m.theme.StatusError.Render(cell("Error: "+m.err.Error(), "", m.width)))
	case m.loading:
		lines = append(lines, m.theme.Loading.Render(cell("Loading products…", "", m.width)))
	case len(m.products) == 0:
		lines = append(lines, m.theme.Subtitle.Render(cell("No products match this filter", "", m.width)))
	default:
		lines = append(lines, m.theme.Subtitle.Render(cell(m.countLine(), "", m.width)))
		end := min(len(m.products), m.offset+m.visibleRows())
		for _, p := range m.products[m.offset:end] {
			lines = append(lines, m.renderProduct(p))
		}
	}
	return strings.Join(lines, "\n")
}

func (m ProductListModel) countLine() string {
	visible := m.visibleRows()
	if len(m.products) <= visible {
		return fmt.Sprintf("%d products", len(m.products))
	}
	return fmt.Sprintf("%d products (%d-%d)", len(m.products), m.offset+1, min(len(m.products), m.offset+visible))
}

func (m ProductListModel) renderProduct(p model.Product) string {
	right := fmt.Sprintf(" %s  %4dml", p.Price(), p.VolumeML)
	return m.theme.Normal.Render(cell(p.Name, right, m.width))
}

// visibleRows excludes the summary and count lines.
func (m ProductListModel) visibleRows() int {
	return max(m.height-2, 1)
}

func (m *ProductListModel) clampOffset() {
	maxOffset := max(len(m.products)-m.visibleRows(), 0)
	m.offset = min(max(m.offset, 0), maxOffset)
}
