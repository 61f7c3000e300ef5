package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/bottleshop/internal/model"
)

// Run starts the storefront browser and blocks until the user quits or ctx
// is cancelled. Mouse motion is reported so the desktop layout can hover.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.Catalog) <= 1 {
		return fmt.Errorf("no categories found - run 'bottleshop catalog sync' or 'bottleshop catalog seed' first")
	}

	m := newModel(ctx, cfg)
	defer m.sel.Close()

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseAllMotion(),
	}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, programOpts...)

	if cfg.CatalogUpdates != nil {
		go forwardCatalogUpdates(ctx, p, cfg.CatalogUpdates)
	}

	slog.Info("browser started",
		"categories", len(cfg.Catalog)-1,
		"filter", m.sel.Filter().String())

	if _, err := p.Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func forwardCatalogUpdates(ctx context.Context, p *tea.Program, updates <-chan model.Catalog) {
	for {
		select {
		case <-ctx.Done():
			return
		case catalog, ok := <-updates:
			if !ok {
				return
			}
			p.Send(CatalogUpdatedMsg{Catalog: catalog})
		}
	}
}
