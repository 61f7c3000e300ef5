package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/selector"
	"github.com/Veraticus/bottleshop/internal/tui/components"
	"github.com/Veraticus/bottleshop/internal/tui/themes"
)

// Screen rows above the menu: the title bar and a spacer.
const bodyTop = 2

// Model holds the main TUI state.
type Model struct {
	ctx       context.Context
	lastError error
	store     Store
	sel       *selector.Selector
	changes   *filterQueue
	theme     themes.Theme
	help      help.Model
	keymap    KeyMap
	desktop   components.DesktopMenuModel
	mobile    components.MobileMenuModel
	products  components.ProductListModel
	locale    model.Locale
	session   string
	modality  selector.Modality
	width     int
	height    int
	breakpt   int
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	changes := &filterQueue{}
	sel := selector.New(cfg.Catalog,
		selector.WithFilterChange(changes.push),
		selector.WithInitialFilter(cfg.InitialFilter),
	)

	keymap := DefaultKeyMap()
	m := Model{
		ctx:      ctx,
		store:    cfg.Store,
		sel:      sel,
		changes:  changes,
		theme:    cfg.Theme,
		help:     help.New(),
		keymap:   keymap,
		desktop:  components.NewDesktopMenu(sel, cfg.Theme),
		mobile:   components.NewMobileMenu(sel, cfg.Theme),
		products: components.NewProductList(cfg.Theme, keymap.Up, keymap.Down),
		locale:   cfg.Locale,
		session:  cfg.Session,
		width:    cfg.Width,
		height:   cfg.Height,
		breakpt:  cfg.Breakpoint,
	}
	m.desktop.SetShowAll(cfg.ShowAll)
	m.mobile.SetShowAll(cfg.ShowAll)
	m.setLocale(cfg.Locale)
	m.resize(cfg.Width, cfg.Height)
	return m
}

// Init loads the products for the initial filter.
func (m Model) Init() tea.Cmd {
	return m.loadProducts(m.sel.Filter())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case FilterChangedMsg:
		m.products.SetSummary(m.sel.Summary(m.locale))
		cmds = append(cmds, m.loadProducts(msg.Filter), m.saveFilter(msg.Filter))

	case components.ProductsLoadedMsg:
		// A slower load for an earlier filter must not replace the current one.
		if msg.Filter == m.sel.Filter() {
			m.products, _ = m.products.Update(msg)
		}

	case CatalogUpdatedMsg:
		m.sel.SetCatalog(msg.Catalog.WithAll())
		m.products.SetSummary(m.sel.Summary(m.locale))
		cmds = append(cmds, m.loadProducts(m.sel.Filter()))

	case errorMsg:
		m.lastError = msg.err
		slog.Error("background operation failed", "context", msg.context, "error", msg.err)
	}

	for _, f := range m.changes.drain() {
		cmds = append(cmds, filterChanged(f))
	}
	if m.quitting {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// Selector exposes the filter hub, mainly for tests and the host command.
func (m Model) Selector() *selector.Selector {
	return m.sel
}

// Modality returns the layout currently driving the selector.
func (m Model) Modality() selector.Modality {
	return m.modality
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
	case key.Matches(msg, m.keymap.ClearFilter):
		m.sel.ClearFilter()
	case key.Matches(msg, m.keymap.Dismiss):
		m.sel.Dismisser().DismissAll()
	case key.Matches(msg, m.keymap.ToggleMenu):
		if m.modality == selector.ModalityMobile {
			m.sel.Mobile().ToggleDropdown()
		}
	case key.Matches(msg, m.keymap.ToggleLocale):
		m.setLocale(m.locale.Toggle())
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	default:
		var cmd tea.Cmd
		m.products, cmd = m.products.Update(msg)
		return cmd
	}
	return nil
}

// handleMouse routes presses inside the active menu to it and every other
// button press to the dismisser. Wheel events never dismiss.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	inside := m.activeContains(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		if m.modality == selector.ModalityDesktop {
			m.desktop, _ = m.desktop.Update(msg)
		}

	case msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel():
		if !inside {
			m.sel.Dismisser().Dispatch(msg.X, msg.Y)
			return
		}
		if m.modality == selector.ModalityMobile {
			m.mobile, _ = m.mobile.Update(msg)
		} else {
			m.desktop, _ = m.desktop.Update(msg)
		}
	}
}

func (m Model) activeContains(x, y int) bool {
	if m.modality == selector.ModalityMobile {
		return m.mobile.Contains(x, y)
	}
	return m.desktop.Contains(x, y)
}

// resize lays the screen out and mounts the controller for the modality the
// width selects. The container is re-registered because menu positions
// depend on the size.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	m.modality = selector.ModalityDesktop
	if width < m.breakpt {
		m.modality = selector.ModalityMobile
	}

	m.desktop.SetPosition(0, bodyTop)
	m.mobile.SetPosition(0, bodyTop)
	m.mobile.Resize(width)

	if m.modality == selector.ModalityDesktop {
		m.products.Resize(width-m.desktop.Width()-2, m.bodyHeight())
	} else {
		m.products.Resize(width, m.bodyHeight()-2)
	}

	var container selector.Container
	if m.modality == selector.ModalityMobile {
		container = selector.ContainerFunc(m.mobile.Contains)
	} else {
		container = selector.ContainerFunc(m.desktop.Contains)
	}
	m.sel.Close()
	m.sel.Activate(m.modality, container)
}

func (m *Model) setLocale(l model.Locale) {
	m.locale = l
	m.desktop.SetLocale(l)
	m.mobile.SetLocale(l)
	m.products.SetSummary(m.sel.Summary(l))
}

func filterChanged(f model.FilterState) tea.Cmd {
	return func() tea.Msg {
		return FilterChangedMsg{Filter: f}
	}
}

func (m Model) loadProducts(f model.FilterState) tea.Cmd {
	store, ctx := m.store, m.ctx
	// A stale filter lists everything, the same way it renders.
	query := f
	if !m.sel.Catalog().Admits(f) {
		query = model.FilterState{}
	}
	return func() tea.Msg {
		if store == nil {
			return components.ProductsLoadedMsg{Filter: f}
		}
		products, err := store.GetProducts(ctx, query)
		if err != nil {
			return components.ProductsLoadedMsg{Filter: f, Err: fmt.Errorf("failed to load products: %w", err)}
		}
		return components.ProductsLoadedMsg{Filter: f, Products: products}
	}
}

func (m Model) saveFilter(f model.FilterState) tea.Cmd {
	if m.store == nil || m.session == "" {
		return nil
	}
	store, ctx, session := m.store, m.ctx, m.session
	return func() tea.Msg {
		if err := store.SaveFilter(ctx, session, f); err != nil {
			return errorMsg{err: err, context: "save filter"}
		}
		return nil
	}
}
