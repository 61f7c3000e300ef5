// Package selector implements the hierarchical category filter selector:
// the pure selection resolver, the desktop (flyout) and mobile (accordion)
// interaction controllers, and the shared outside-interaction dismisser.
//
// Both controllers funnel every click or tap through the resolver, so the
// same logical sequence of selections reaches the same FilterState in
// either modality.
package selector

import (
	"fmt"

	"github.com/Veraticus/bottleshop/internal/model"
)

// ActionKind identifies what a selection resolves to.
type ActionKind int

const (
	// ActionNone leaves every piece of state untouched.
	ActionNone ActionKind = iota
	// ActionSetFilter commits Filter and closes all menus.
	ActionSetFilter
	// ActionOpenCategory opens the category's submenu without touching the filter.
	ActionOpenCategory
	// ActionOpenOrigin opens the origin type's sub-submenu without touching the filter.
	ActionOpenOrigin
)

// Action is the outcome of resolving a selection.
type Action struct {
	Filter   model.FilterState
	Category string
	Origin   string
	Kind     ActionKind
}

// Commits reports whether the action finalizes a selection into the filter.
func (a Action) Commits() bool {
	return a.Kind == ActionSetFilter
}

func (a Action) String() string {
	switch a.Kind {
	case ActionSetFilter:
		return fmt.Sprintf("SetFilter(%s)", a.Filter)
	case ActionOpenCategory:
		return fmt.Sprintf("OpenCategoryMenu(%s)", a.Category)
	case ActionOpenOrigin:
		return fmt.Sprintf("OpenOriginMenu(%s, %s)", a.Category, a.Origin)
	default:
		return "None"
	}
}

func setFilter(f model.FilterState) Action {
	return Action{Kind: ActionSetFilter, Filter: f}
}

// ResolveCategory decides what selecting a category yields given the
// current menu state.
//
// The "all" category clears the filter. A category with no origin types
// commits bare. A category without an "imported" origin auto-resolves to
// its domestic (or first) origin and skips the submenu. Otherwise the first
// selection opens the submenu and a second selection on the open category
// commits the bare category.
func ResolveCategory(cat model.Category, menu MenuState) Action {
	if cat.IsAll() {
		return setFilter(model.FilterState{})
	}

	if len(cat.OriginTypes) == 0 {
		return setFilter(model.FilterState{Category: cat.ID})
	}

	if !cat.HasImported() {
		origin, _ := cat.ResolvedOriginType()
		return setFilter(model.FilterState{Category: cat.ID, OriginType: origin.Type})
	}

	if menu.IsCategoryOpen(cat.ID) {
		return setFilter(model.FilterState{Category: cat.ID})
	}

	return Action{Kind: ActionOpenCategory, Category: cat.ID}
}

// ResolveOrigin decides what selecting an origin type within a category
// yields. An origin with sub-categories opens on first selection; a second
// selection, or an origin without sub-categories, commits.
func ResolveOrigin(cat model.Category, originType string, menu MenuState) Action {
	origin, ok := cat.FindOrigin(originType)
	if !ok || cat.IsAll() {
		return Action{}
	}

	if origin.HasSubCategories() && !menu.IsOriginOpen(cat.ID, originType) {
		return Action{Kind: ActionOpenOrigin, Category: cat.ID, Origin: originType}
	}

	return setFilter(model.FilterState{Category: cat.ID, OriginType: originType})
}

// ResolveSubCategory commits a leaf selection. Sub-categories that do not
// belong to the named origin of the category resolve to ActionNone.
func ResolveSubCategory(cat model.Category, originType, subCategory string) Action {
	origin, ok := cat.FindOrigin(originType)
	if !ok || cat.IsAll() {
		return Action{}
	}
	if _, ok := origin.FindSubCategory(subCategory); !ok {
		return Action{}
	}

	return setFilter(model.FilterState{
		Category:    cat.ID,
		OriginType:  originType,
		SubCategory: subCategory,
	})
}
