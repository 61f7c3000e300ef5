package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/bottleshop/internal/catalog"
	"github.com/Veraticus/bottleshop/internal/cli"
	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/config"
	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/storage"
)

const defaultImportBatch = 50

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the storefront catalog",
		Long:  `List, import, sync and seed the category catalog and its products.`,
	}

	cmd.AddCommand(listCatalogCmd())
	cmd.AddCommand(importCatalogCmd())
	cmd.AddCommand(syncCatalogCmd())
	cmd.AddCommand(seedCatalogCmd())

	return cmd
}

func listCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the category tree",
		Long:  `Display the stored catalog as a tree of categories, origins and sub-categories.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			locale, _ := cmd.Flags().GetString("locale")
			file, _ := cmd.Flags().GetString("file")

			doc, err := loadListed(ctx, file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(doc.Categories) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No categories found. Use 'bottleshop catalog seed' to create some."))
				return nil
			}

			fmt.Fprintln(out, cli.RenderCatalogTree(doc.Catalog(), model.ParseLocale(locale)))
			fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("\n%d categories, %d products", len(doc.Categories), len(doc.Products))))
			return nil
		},
	}

	cmd.Flags().String("locale", "en", "Label language (en, ne)")
	cmd.Flags().String("file", "", "List a catalog file instead of the database")

	return cmd
}

func loadListed(ctx context.Context, file string) (*catalog.Document, error) {
	if file != "" {
		return catalog.LoadFile(file)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	return (&catalog.StoreSource{Store: store}).Load(ctx)
}

func importCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a catalog file into the database",
		Long: `Replace the stored catalog with the categories in a YAML or JSON file and
upsert its products in batches.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Int("batch-size", defaultImportBatch, "Products saved per transaction")
	cmd.Flags().Bool("dry-run", false, "Validate the file without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := config.ExpandPath(args[0])
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	doc, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Importing catalog"),
		"file", path,
		"categories", len(doc.Categories),
		"products", len(doc.Products))

	if dryRun {
		slog.Info(cli.FormatWarning("Dry run mode - not saving to database"))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	interrupts.Watch(ctx, "bottleshop catalog import "+args[0])
	defer interrupts.Stop()

	if err := store.ReplaceCatalog(ctx, doc.Categories); err != nil {
		return err
	}

	bar := newImportBar(cmd, len(doc.Products))
	if err := saveInBatches(ctx, store, doc.Products, batchSize, bar.Add); err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess("Import complete!"),
		"categories", len(doc.Categories),
		"products", len(doc.Products))
	return nil
}

func newImportBar(cmd *cobra.Command, total int) *progressbar.ProgressBar {
	out := cmd.ErrOrStderr()
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Saving products...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(out); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// productSaver is the slice of the store saveInBatches needs.
type productSaver interface {
	SaveProducts(ctx context.Context, products []model.Product) error
}

// saveInBatches upserts products batch by batch, reporting progress after
// each one. Batches already saved stay saved when ctx is cancelled.
func saveInBatches(ctx context.Context, store productSaver, products []model.Product, size int, progress func(int) error) error {
	if size <= 0 {
		size = defaultImportBatch
	}
	for start := 0; start < len(products); start += size {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("import stopped after %d products: %w", start, err)
		}
		end := min(start+size, len(products))
		if err := store.SaveProducts(ctx, products[start:end]); err != nil {
			return fmt.Errorf("failed to save products %d-%d: %w", start+1, end, err)
		}
		if progress != nil {
			if err := progress(end - start); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}
	return nil
}

func syncCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refetch the catalog from its configured source",
		Long: `Load the catalog from catalog.source (a file or the storefront API) and
replace the stored copy with it.`,
		RunE: runSync,
	}

	cmd.Flags().String("from", "", "Sync from this catalog file instead of the configured source")
	cmd.Flags().String("url", "", "Sync from this storefront API instead of the configured source")

	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	from, _ := cmd.Flags().GetString("from")
	url, _ := cmd.Flags().GetString("url")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	switch {
	case from != "":
		cfg.Catalog.Source, cfg.Catalog.File = config.SourceFile, config.ExpandPath(from)
	case url != "":
		cfg.Catalog.Source, cfg.Catalog.BaseURL = config.SourceRemote, url
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
	switch s := src.(type) {
	case *catalog.StoreSource:
		return common.NewUserError("catalog.source is 'store' - pass --from or --url, or configure a file or remote source", nil)
	case *catalog.RemoteSource:
		defer func() { _ = s.Client.Close() }()
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	interrupts.Watch(ctx, "bottleshop catalog sync")
	defer interrupts.Stop()

	slog.Info("🔄 Syncing catalog...", "source", src.Name())
	doc, err := catalog.Sync(ctx, src, store)
	if err != nil {
		return fmt.Errorf("failed to sync catalog: %w", err)
	}

	slog.Info(cli.FormatSuccess("Catalog synced"),
		"categories", len(doc.Categories),
		"products", len(doc.Products))
	return nil
}

func seedCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in sample catalog",
		Long: `Store the built-in sample catalog of spirits, wine and beer, or write it
to a file as a starting point for your own.`,
		RunE: runSeed,
	}

	cmd.Flags().BoolP("yes", "y", false, "Replace an existing catalog without asking")
	cmd.Flags().String("export", "", "Write the sample catalog to this file ('-' for stdout) instead of storing it")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	yes, _ := cmd.Flags().GetBool("yes")
	export, _ := cmd.Flags().GetString("export")
	doc := catalog.Seed()

	if export != "" {
		return exportSeed(cmd, doc, export)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ok, err := confirmReplace(ctx, cmd, store, yes)
	if err != nil {
		return err
	}
	if !ok {
		slog.Info(cli.FormatInfo("Seed cancelled, existing catalog kept"))
		return nil
	}

	if _, err := catalog.Sync(ctx, &staticSource{doc: doc}, store); err != nil {
		return err
	}
	slog.Info(cli.FormatSuccess("Sample catalog stored"),
		"categories", len(doc.Categories),
		"products", len(doc.Products))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), seedSummary(doc))
	return err
}

// seedSummary boxes the stored categories with their product counts.
func seedSummary(doc *catalog.Document) string {
	counts := make(map[string]int, len(doc.Categories))
	for _, p := range doc.Products {
		counts[p.CategoryID]++
	}

	lines := make([]string, 0, len(doc.Categories))
	for _, cat := range doc.Categories {
		lines = append(lines, fmt.Sprintf("%-12s %d products", cat.DisplayName.EN, counts[cat.ID]))
	}
	return cli.RenderBox("Sample catalog", strings.Join(lines, "\n"))
}

func exportSeed(cmd *cobra.Command, doc *catalog.Document, path string) error {
	if path == "-" {
		return catalog.Encode(cmd.OutOrStdout(), doc)
	}

	path = config.ExpandPath(path)
	if err := config.EnsureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path comes from the user's own flag
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := catalog.Encode(f, doc); err != nil {
		return err
	}
	slog.Info(cli.FormatSuccess("Sample catalog written"), "file", path)
	return nil
}

func confirmReplace(ctx context.Context, cmd *cobra.Command, store *storage.SQLiteStorage, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	count, err := store.CategoryCount(ctx)
	if err != nil {
		return false, err
	}
	if count == 0 {
		return true, nil
	}

	reader := cli.NewNonBlockingReader(cmd.InOrStdin())
	return reader.Confirm(ctx, cmd.OutOrStdout(),
		fmt.Sprintf("Replace the %d stored categories with the sample catalog?", count))
}

// staticSource serves an in-memory document to catalog.Sync.
type staticSource struct {
	doc *catalog.Document
}

func (s *staticSource) Name() string { return "seed" }

func (s *staticSource) Load(_ context.Context) (*catalog.Document, error) {
	return s.doc, nil
}
