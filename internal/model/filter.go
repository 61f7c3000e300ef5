package model

import "strings"

// FilterState is the storefront's category filter. Each field refines the
// one before it: an origin type needs a category and a sub-category needs
// an origin type.
type FilterState struct {
	Category    string `json:"category,omitempty"`
	OriginType  string `json:"originType,omitempty"`
	SubCategory string `json:"subCategory,omitempty"`
}

// IsEmpty reports whether no filter is applied.
func (f FilterState) IsEmpty() bool {
	return f == FilterState{}
}

// Refines reports whether the refinement chain holds.
func (f FilterState) Refines() bool {
	if f.SubCategory != "" && f.OriginType == "" {
		return false
	}
	if f.OriginType != "" && f.Category == "" {
		return false
	}
	return true
}

// String renders the filter as a slash-separated path.
func (f FilterState) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{f.Category, f.OriginType, f.SubCategory} {
		if p == "" {
			break
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return AllCategoryID
	}
	return strings.Join(parts, "/")
}

// Catalog is a read-only view over the categories supplied by the storefront.
type Catalog []Category

// FindCategory looks up a category by id. Unknown ids resolve to no match.
func (c Catalog) FindCategory(id string) (Category, bool) {
	if id == "" {
		return Category{}, false
	}
	for _, cat := range c {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Admits reports whether every level named by the filter exists in the catalog.
func (c Catalog) Admits(f FilterState) bool {
	if !f.Refines() {
		return false
	}
	if f.Category == "" {
		return true
	}
	cat, ok := c.FindCategory(f.Category)
	if !ok || cat.IsAll() {
		return false
	}
	if f.OriginType == "" {
		return true
	}
	origin, ok := cat.FindOrigin(f.OriginType)
	if !ok {
		return false
	}
	if f.SubCategory == "" {
		return true
	}
	_, ok = origin.FindSubCategory(f.SubCategory)
	return ok
}

// WithAll returns the catalog with the "all" pseudo category prepended
// unless the catalog already carries one.
func (c Catalog) WithAll() Catalog {
	if _, ok := c.FindCategory(AllCategoryID); ok {
		return c
	}
	out := make(Catalog, 0, len(c)+1)
	out = append(out, AllCategory())
	return append(out, c...)
}
