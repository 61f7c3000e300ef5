package tui

import (
	"context"

	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/tui/themes"
)

// Store is the product store the browser reads from. Saved filters are
// restored on the next start.
type Store interface {
	GetProducts(ctx context.Context, filter model.FilterState) ([]model.Product, error)
	SaveFilter(ctx context.Context, name string, filter model.FilterState) error
}

// Config holds TUI configuration.
type Config struct {
	Theme          themes.Theme
	Store          Store
	CatalogUpdates <-chan model.Catalog
	Locale         model.Locale
	Session        string
	InitialFilter  model.FilterState
	Catalog        model.Catalog
	Width          int
	Height         int
	Breakpoint     int
	ShowAll        bool
	AltScreen      bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// DefaultBreakpoint is the terminal width at which the desktop layout starts.
const DefaultBreakpoint = 100

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:      themes.Default,
		Locale:     model.LocaleEnglish,
		Width:      120,
		Height:     30,
		Breakpoint: DefaultBreakpoint,
		ShowAll:    true,
		AltScreen:  true,
	}
}

// WithStore sets the product store.
func WithStore(store Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithCatalog sets the category catalog. The "all" entry is added when missing.
func WithCatalog(catalog model.Catalog) Option {
	return func(c *Config) {
		c.Catalog = catalog.WithAll()
	}
}

// WithCatalogUpdates delivers refetched catalogs to the running browser.
func WithCatalogUpdates(updates <-chan model.Catalog) Option {
	return func(c *Config) {
		c.CatalogUpdates = updates
	}
}

// WithInitialFilter restores a previously committed filter.
func WithInitialFilter(f model.FilterState) Option {
	return func(c *Config) {
		c.InitialFilter = f
	}
}

// WithSession names the filter session saved on every change.
func WithSession(name string) Option {
	return func(c *Config) {
		c.Session = name
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithLocale sets the label language.
func WithLocale(l model.Locale) Option {
	return func(c *Config) {
		c.Locale = l
	}
}

// WithBreakpoint sets the width at which the layout switches to desktop.
func WithBreakpoint(width int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Breakpoint = width
		}
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithShowAll controls whether the "all" row is listed in the menus.
func WithShowAll(show bool) Option {
	return func(c *Config) {
		c.ShowAll = show
	}
}

// WithAltScreen controls whether the program takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
