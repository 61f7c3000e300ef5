package tui

import (
	"github.com/Veraticus/bottleshop/internal/model"
	"github.com/Veraticus/bottleshop/internal/tui/components"
)

// FilterChangedMsg is delivered once per committed or cleared filter.
type FilterChangedMsg = components.FilterChangedMsg

// CatalogUpdatedMsg replaces the catalog after a refetch.
type CatalogUpdatedMsg struct {
	Catalog model.Catalog
}

// errorMsg reports a failed background operation.
type errorMsg struct {
	err     error
	context string
}

// filterQueue collects selector notifications during one Update so they
// can be turned into messages afterwards.
type filterQueue struct {
	pending []model.FilterState
}

func (q *filterQueue) push(f model.FilterState) {
	q.pending = append(q.pending, f)
}

func (q *filterQueue) drain() []model.FilterState {
	out := q.pending
	q.pending = nil
	return out
}
