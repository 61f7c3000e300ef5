package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/bottleshop/internal/cli"
	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/query"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products under a filter",
		Long: `List stored products under a category filter, optionally narrowed by an
expression over name, category, origin, sub, price (rupees) and volume (ml).

Examples:
  bottleshop products --category whisky --origin imported
  bottleshop products --where 'price < 2000 && volume >= 750'`,
		RunE: runProducts,
	}

	cmd.Flags().String("category", "", "Category id")
	cmd.Flags().String("origin", "", "Origin type (requires --category)")
	cmd.Flags().String("sub", "", "Sub-category (requires --origin)")
	cmd.Flags().String("where", "", "Boolean expression products must satisfy")

	return cmd
}

func runProducts(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	category, _ := cmd.Flags().GetString("category")
	origin, _ := cmd.Flags().GetString("origin")
	sub, _ := cmd.Flags().GetString("sub")
	where, _ := cmd.Flags().GetString("where")

	// Compile first so a typo fails before the database is touched.
	predicate, err := query.Compile(where)
	if err != nil {
		return err
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

	filter := model.FilterState{Category: category, OriginType: origin, SubCategory: sub}
	products, err := store.GetProducts(ctx, filter)
	if err != nil {
		return err
	}

	products, err = predicate.Filter(products)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.RenderProductTable(products))
	if len(products) > 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("\n%d products (%s)", len(products), filter)))
	}
	return nil
}
