package selector

import (
	"strings"

	"github.com/Veraticus/bottleshop/internal/model"
)

// BreadcrumbSeparator joins the levels of a rendered filter.
const BreadcrumbSeparator = " › "

// Breadcrumb renders a human-readable path for the filter. Levels that no
// longer resolve against the catalog end the path; a filter whose category
// is unknown renders as unselected.
func Breadcrumb(catalog model.Catalog, f model.FilterState, locale model.Locale) string {
	all := model.AllCategory().DisplayName.Resolve(locale)

	cat, ok := catalog.FindCategory(f.Category)
	if !ok || cat.IsAll() {
		return all
	}

	parts := []string{CategoryLabel(cat, locale)}
	if origin, ok := cat.FindOrigin(f.OriginType); ok {
		parts = append(parts, OriginLabel(origin, locale))
		if sub, ok := origin.FindSubCategory(f.SubCategory); ok {
			parts = append(parts, sub.Label())
		}
	}
	return strings.Join(parts, BreadcrumbSeparator)
}

// OriginLabel resolves an origin's display label, falling back to the
// capitalized type string when the catalog carries no label.
func OriginLabel(origin model.OriginType, locale model.Locale) string {
	if label := origin.DisplayLabel.Resolve(locale); label != "" {
		return label
	}
	return model.CapitalizeFirst(origin.Type)
}

// CategoryLabel resolves a category's display name, falling back to its id.
func CategoryLabel(cat model.Category, locale model.Locale) string {
	if label := cat.DisplayName.Resolve(locale); label != "" {
		return label
	}
	return model.CapitalizeFirst(cat.ID)
}
