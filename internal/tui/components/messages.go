package components

import "github.com/Veraticus/bottleshop/internal/model"

// FilterChangedMsg reports a committed or cleared filter.
type FilterChangedMsg struct {
	Filter model.FilterState
}

// ProductsLoadedMsg carries the products matching Filter.
type ProductsLoadedMsg struct {
	Err      error
	Filter   model.FilterState
	Products []model.Product
}
