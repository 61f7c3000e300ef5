package model

import "fmt"

// Product is a storefront item shown next to the category filter.
type Product struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	CategoryID  string `json:"categoryId" yaml:"category_id"`
	OriginType  string `json:"originType,omitempty" yaml:"origin_type,omitempty"`
	SubCategory string `json:"subCategory,omitempty" yaml:"sub_category,omitempty"`
	PricePaisa  int64  `json:"pricePaisa" yaml:"price_paisa"`
	VolumeML    int    `json:"volumeMl" yaml:"volume_ml"`
}

// Matches reports whether the product falls under the filter.
func (p Product) Matches(f FilterState) bool {
	if f.Category != "" && p.CategoryID != f.Category {
		return false
	}
	if f.OriginType != "" && p.OriginType != f.OriginType {
		return false
	}
	if f.SubCategory != "" && p.SubCategory != f.SubCategory {
		return false
	}
	return true
}

// Price formats the price in rupees.
func (p Product) Price() string {
	return fmt.Sprintf("Rs %d.%02d", p.PricePaisa/100, p.PricePaisa%100)
}

// Validate ensures the product can be stored.
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %q: name is required", p.ID)
	}
	if p.CategoryID == "" {
		return fmt.Errorf("product %q: category is required", p.ID)
	}
	if p.SubCategory != "" && p.OriginType == "" {
		return fmt.Errorf("product %q: sub-category %q requires an origin type", p.ID, p.SubCategory)
	}
	if p.PricePaisa < 0 {
		return fmt.Errorf("product %q: price must not be negative", p.ID)
	}
	return nil
}
