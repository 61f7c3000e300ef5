// Package main provides a demo program for the TUI
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/bottleshop/internal/catalog"
	"github.com/Veraticus/bottleshop/internal/storage"
	"github.com/Veraticus/bottleshop/internal/tui"
	"github.com/Veraticus/bottleshop/internal/tui/themes"
)

func main() {
	if err := run(context.Background()); err != nil {
		// Use explicit error check to satisfy forbidigo
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// run serves the sample catalog from an in-memory database.
func run(ctx context.Context) error {
	store, err := storage.Open(ctx, ":memory:")
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	doc := catalog.Seed()
	if err := store.ReplaceCatalog(ctx, doc.Categories); err != nil {
		return err
	}
	if err := store.SaveProducts(ctx, doc.Products); err != nil {
		return err
	}

	return tui.Run(ctx,
		tui.WithStore(store),
		tui.WithCatalog(doc.Catalog()),
		tui.WithTheme(themes.CatppuccinMocha),
		tui.WithSize(120, 40),
	)
}
