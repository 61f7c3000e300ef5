package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/bottleshop/internal/cli"
	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/selector"
)

func filterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <category> [origin] [sub-category]",
		Short: "Select a filter through both menu layouts",
		Long: `Drive the flyout menu and the dropdown menu through the clicks and taps a
shopper would make to reach a filter, and print where each ends up. The
command fails when the two layouts disagree.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: runFilter,
	}

	cmd.Flags().String("locale", "en", "Label language (en, ne)")
	cmd.Flags().String("file", "", "Use a catalog file instead of the database")

	return cmd
}

func runFilter(cmd *cobra.Command, args []string) error {
	locale, _ := cmd.Flags().GetString("locale")
	file, _ := cmd.Flags().GetString("file")

	doc, err := loadListed(cmd.Context(), file)
	if err != nil {
		return err
	}
	catalog := doc.Catalog()
	loc := model.ParseLocale(locale)

	desktop := scriptDesktop(catalog, args)
	mobile := scriptMobile(catalog, args)

	out := cmd.OutOrStdout()
	if desktop != mobile {
		fmt.Fprintln(out, cli.FormatError("Layouts disagree"))
		fmt.Fprintf(out, "  desktop: %s (%s)\n", selector.Breadcrumb(catalog, desktop, loc), desktop)
		fmt.Fprintf(out, "  mobile:  %s (%s)\n", selector.Breadcrumb(catalog, mobile, loc), mobile)
		return common.NewUserError("desktop and mobile selections differ", nil)
	}

	fmt.Fprintln(out, cli.FormatSuccess(selector.Breadcrumb(catalog, desktop, loc)))
	fmt.Fprintln(out, cli.SubtleStyle.Render(desktop.String()))
	return nil
}

// scriptDesktop clicks through the flyouts toward path and returns the
// committed filter. Clicking an open row again commits it.
func scriptDesktop(catalog model.Catalog, path []string) model.FilterState {
	sel := selector.New(catalog)
	defer sel.Close()
	d := sel.Desktop()

	cat := path[0]
	d.ClickCategory(cat)
	if len(path) == 1 {
		if d.Menu().IsCategoryOpen(cat) {
			d.ClickCategory(cat)
		}
		return sel.Filter()
	}

	origin := path[1]
	d.ClickOrigin(cat, origin)
	if len(path) == 2 {
		if d.Menu().IsOriginOpen(cat, origin) {
			d.ClickOrigin(cat, origin)
		}
		return sel.Filter()
	}

	d.ClickSubCategory(cat, origin, path[2])
	return sel.Filter()
}

// scriptMobile taps through the dropdown toward path and returns the
// committed filter.
func scriptMobile(catalog model.Catalog, path []string) model.FilterState {
	sel := selector.New(catalog)
	defer sel.Close()
	m := sel.Mobile()

	m.ToggleDropdown()

	cat := path[0]
	m.TapCategory(cat)
	if len(path) == 1 {
		if m.Expanded().IsCategoryOpen(cat) {
			m.TapCategory(cat)
		}
		return sel.Filter()
	}

	origin := path[1]
	m.TapOrigin(cat, origin)
	if len(path) == 2 {
		if m.Expanded().IsOriginOpen(cat, origin) {
			m.TapOrigin(cat, origin)
		}
		return sel.Filter()
	}

	m.TapSubCategory(cat, origin, path[2])
	return sel.Filter()
}
