package selector

import "fmt"

type menuLevel int

const (
	levelClosed menuLevel = iota
	levelCategory
	levelOrigin
)

// MenuState is the open/closed state of the category menu tree.
// It is one of Closed, CategoryOpen(id) or OriginOpen(id, type); opening
// a second submenu replaces the first.
type MenuState struct {
	category string
	origin   string
	level    menuLevel
}

// Closed returns the fully closed menu state.
func Closed() MenuState {
	return MenuState{}
}

// CategoryOpen returns a state with the given category's submenu open.
func CategoryOpen(categoryID string) MenuState {
	return MenuState{level: levelCategory, category: categoryID}
}

// OriginOpen returns a state with an origin type's sub-submenu open
// beneath its category.
func OriginOpen(categoryID, originType string) MenuState {
	return MenuState{level: levelOrigin, category: categoryID, origin: originType}
}

// IsClosed reports whether nothing is open.
func (s MenuState) IsClosed() bool {
	return s.level == levelClosed
}

// OpenCategory returns the category whose submenu is open.
func (s MenuState) OpenCategory() (string, bool) {
	if s.level == levelClosed {
		return "", false
	}
	return s.category, true
}

// OpenOrigin returns the category and origin type whose sub-submenu is open.
func (s MenuState) OpenOrigin() (categoryID, originType string, ok bool) {
	if s.level != levelOrigin {
		return "", "", false
	}
	return s.category, s.origin, true
}

// IsCategoryOpen reports whether the category's submenu is open, either
// directly or because one of its origin types is open.
func (s MenuState) IsCategoryOpen(categoryID string) bool {
	return s.level != levelClosed && s.category == categoryID
}

// IsOriginOpen reports whether the origin type's sub-submenu is open.
func (s MenuState) IsOriginOpen(categoryID, originType string) bool {
	return s.level == levelOrigin && s.category == categoryID && s.origin == originType
}

// Apply returns the menu state after an action. Commits close everything.
func (s MenuState) Apply(a Action) MenuState {
	switch a.Kind {
	case ActionOpenCategory:
		return CategoryOpen(a.Category)
	case ActionOpenOrigin:
		return OriginOpen(a.Category, a.Origin)
	case ActionSetFilter:
		return Closed()
	default:
		return s
	}
}

func (s MenuState) String() string {
	switch s.level {
	case levelCategory:
		return fmt.Sprintf("CategoryOpen(%s)", s.category)
	case levelOrigin:
		return fmt.Sprintf("OriginOpen(%s, %s)", s.category, s.origin)
	default:
		return "Closed"
	}
}
