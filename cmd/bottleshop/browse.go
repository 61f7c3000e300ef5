package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/bottleshop/internal/catalog"
	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/config"
	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/storage"
	"github.com/Veraticus/bottleshop/internal/tui"
	"github.com/Veraticus/bottleshop/internal/tui/themes"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the storefront in the terminal",
		Long: `Open the storefront browser.

Wide terminals show a category column with flyout menus: hover to peek,
click to open or select. Narrow terminals show a dropdown you open with a
click (or 'm') and expand row by row. The last selected filter is restored
on the next start.`,
		RunE: runBrowse,
	}

	cmd.Flags().String("theme", "", "Theme (default, catppuccin-mocha)")
	cmd.Flags().String("locale", "", "Label language (en, ne)")
	cmd.Flags().Bool("no-watch", false, "Do not reload the catalog file when it changes")

	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("ui.locale", cmd.Flags().Lookup("locale"))

	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	src, err := catalog.NewSource(cfg, store)
	if err != nil {
		return err
	}

	doc, err := loadForBrowse(ctx, src, store)
	if err != nil {
		return err
	}
	if len(doc.Categories) == 0 {
		return common.NewUserError("no categories found - run 'bottleshop catalog seed' or 'bottleshop catalog sync' first", nil)
	}

	initial, err := store.LoadFilter(ctx, storage.DefaultSession)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}

	// The alt screen owns the terminal; logs go to a file from here on.
	if err := config.EnsureDir(cfg.UI.LogFile); err != nil {
		return err
	}
	logFile, err := tea.LogToFile(cfg.UI.LogFile, "bottleshop")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	if err := common.SetupLoggerTo(logFile, level, cfg.Logging.Format); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []tui.Option{
		tui.WithStore(store),
		tui.WithCatalog(doc.Catalog()),
		tui.WithInitialFilter(initial),
		tui.WithSession(storage.DefaultSession),
		tui.WithTheme(themes.GetTheme(cfg.UI.Theme)),
		tui.WithLocale(model.ParseLocale(cfg.UI.Locale)),
		tui.WithBreakpoint(cfg.UI.Breakpoint),
		tui.WithShowAll(cfg.UI.ShowAll),
	}
	if fileSrc, ok := src.(*catalog.FileSource); ok && !noWatch {
		opts = append(opts, tui.WithCatalogUpdates(watchCatalog(ctx, fileSrc.Path, store)))
	}

	return tui.Run(ctx, opts...)
}

// loadForBrowse reads the catalog from src and, when src is not the store
// itself, mirrors it into the store so products can be queried locally.
func loadForBrowse(ctx context.Context, src catalog.Source, store *storage.SQLiteStorage) (*catalog.Document, error) {
	if _, ok := src.(*catalog.StoreSource); ok {
		return src.Load(ctx)
	}

	doc, err := catalog.Sync(ctx, src, store)
	if err == nil {
		return doc, nil
	}

	// Fall back to the last synced copy so a flaky API does not block browsing.
	common.LogError(err, "catalog sync failed, using stored catalog", common.Fields{"source": src.Name()})
	stored, storeErr := (&catalog.StoreSource{Store: store}).Load(ctx)
	if storeErr != nil || len(stored.Categories) == 0 {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", src.Name(), err)
	}
	return stored, nil
}

// watchCatalog syncs every valid revision of the catalog file into the
// store and forwards it to the browser.
func watchCatalog(ctx context.Context, path string, store *storage.SQLiteStorage) <-chan model.Catalog {
	updates := make(chan model.Catalog, 1)

	go func() {
		defer close(updates)
		err := catalog.Watch(ctx, path, 0, func(doc *catalog.Document) {
			if err := store.ReplaceCatalog(ctx, doc.Categories); err != nil {
				common.LogError(err, "failed to store reloaded catalog", common.Fields{"path": path})
				return
			}
			if len(doc.Products) > 0 {
				if err := store.SaveProducts(ctx, doc.Products); err != nil {
					common.LogError(err, "failed to store reloaded products", common.Fields{"path": path, "products": len(doc.Products)})
				}
			}
			select {
			case updates <- doc.Catalog():
			case <-ctx.Done():
			}
		})
		if err != nil {
			common.LogError(err, "catalog watch stopped", common.Fields{"path": path})
		}
	}()

	return updates
}
