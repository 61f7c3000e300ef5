package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Origin types with special meaning to the filter selector.
const (
	// OriginDomestic is preferred when a category auto-resolves its origin.
	OriginDomestic = "domestic"
	// OriginImported marks a category whose origin choice is meaningful.
	OriginImported = "imported"
)

// AllCategoryID is the pseudo category that clears the filter.
const AllCategoryID = "all"

// Locale selects which half of a LocalizedText is rendered.
type Locale string

const (
	// LocaleEnglish renders the English label.
	LocaleEnglish Locale = "en"
	// LocaleNepali renders the Nepali label.
	LocaleNepali Locale = "ne"
)

// ParseLocale returns the locale for a config value, defaulting to English.
func ParseLocale(s string) Locale {
	if strings.EqualFold(strings.TrimSpace(s), string(LocaleNepali)) {
		return LocaleNepali
	}
	return LocaleEnglish
}

// Toggle switches between the two supported locales.
func (l Locale) Toggle() Locale {
	if l == LocaleNepali {
		return LocaleEnglish
	}
	return LocaleNepali
}

// LocalizedText is an English/Nepali label pair.
type LocalizedText struct {
	EN string `json:"en" yaml:"en"`
	NE string `json:"ne" yaml:"ne"`
}

// Resolve returns the label for the locale. Missing Nepali text falls back to English.
func (t LocalizedText) Resolve(l Locale) string {
	if l == LocaleNepali && t.NE != "" {
		return t.NE
	}
	return t.EN
}

// SubCategory is the finest-grained filter leaf.
type SubCategory struct {
	Name string `json:"name" yaml:"name"`
}

// Label renders the sub-category name with its first character upper-cased.
func (s SubCategory) Label() string {
	return CapitalizeFirst(s.Name)
}

// OriginType is a domestic/imported (or similar) subdivision of a category.
type OriginType struct {
	Type          string        `json:"type" yaml:"type"`
	DisplayLabel  LocalizedText `json:"displayLabel" yaml:"display_label"`
	SubCategories []SubCategory `json:"subCategories,omitempty" yaml:"sub_categories,omitempty"`
}

// HasSubCategories reports whether the origin expands one more level.
func (o OriginType) HasSubCategories() bool {
	return len(o.SubCategories) > 0
}

// FindSubCategory looks up a sub-category by name.
func (o OriginType) FindSubCategory(name string) (SubCategory, bool) {
	for _, sub := range o.SubCategories {
		if sub.Name == name {
			return sub, true
		}
	}
	return SubCategory{}, false
}

// Category is a top-level product category in the storefront catalog.
type Category struct {
	ID          string        `json:"id" yaml:"id"`
	DisplayName LocalizedText `json:"displayName" yaml:"display_name"`
	IconRef     string        `json:"iconRef,omitempty" yaml:"icon_ref,omitempty"`
	ColorToken  string        `json:"colorToken,omitempty" yaml:"color_token,omitempty"`
	OriginTypes []OriginType  `json:"originTypes,omitempty" yaml:"origin_types,omitempty"`
}

// IsAll reports whether this is the clear-everything pseudo category.
func (c Category) IsAll() bool {
	return c.ID == AllCategoryID
}

// FindOrigin looks up an origin type by its type string.
func (c Category) FindOrigin(originType string) (OriginType, bool) {
	for _, origin := range c.OriginTypes {
		if origin.Type == originType {
			return origin, true
		}
	}
	return OriginType{}, false
}

// HasImported reports whether the category carries an origin literally typed "imported".
func (c Category) HasImported() bool {
	_, ok := c.FindOrigin(OriginImported)
	return ok
}

// Expandable reports whether the category renders a submenu affordance.
func (c Category) Expandable() bool {
	return !c.IsAll() && c.HasImported()
}

// ResolvedOriginType returns the origin a category auto-resolves to:
// the domestic entry when present, otherwise the first entry.
func (c Category) ResolvedOriginType() (OriginType, bool) {
	if len(c.OriginTypes) == 0 {
		return OriginType{}, false
	}
	if origin, ok := c.FindOrigin(OriginDomestic); ok {
		return origin, true
	}
	return c.OriginTypes[0], true
}

// AllCategory returns the pseudo category used to clear the filter.
func AllCategory() Category {
	return Category{
		ID:          AllCategoryID,
		DisplayName: LocalizedText{EN: "All Categories", NE: "सबै"},
		IconRef:     "all",
		ColorToken:  "muted",
	}
}

// CapitalizeFirst upper-cases the first character of s.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
