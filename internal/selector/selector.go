package selector

import (
	"github.com/Veraticus/bottleshop/internal/common"
	"github.com/Veraticus/bottleshop/internal/model"
)

// Modality is the input style the selector is currently driven by.
type Modality int

const (
	// ModalityDesktop drives the selector with hover and click flyouts.
	ModalityDesktop Modality = iota
	// ModalityMobile drives the selector with a tap-to-expand dropdown.
	ModalityMobile
)

func (m Modality) String() string {
	if m == ModalityMobile {
		return "mobile"
	}
	return "desktop"
}

// Option configures a Selector.
type Option func(*Selector)

// WithFilterChange sets the callback invoked once per committed selection.
func WithFilterChange(fn func(model.FilterState)) Option {
	return func(s *Selector) {
		s.onChange = fn
	}
}

// WithDismisser shares an existing dismisser instead of creating one.
func WithDismisser(d *Dismisser) Option {
	return func(s *Selector) {
		if d != nil {
			s.dismisser = d
		}
	}
}

// WithInitialFilter seeds the filter state, for example from a saved session.
// Filters the catalog does not admit are ignored.
func WithInitialFilter(f model.FilterState) Option {
	return func(s *Selector) {
		s.initial = f
	}
}

// Selector owns the filter state and both interaction controllers.
type Selector struct {
	dismisser *Dismisser
	onChange  func(model.FilterState)
	desktop   *DesktopController
	mobile    *MobileController
	filter    model.FilterState
	initial   model.FilterState
	catalog   model.Catalog
	active    Modality
}

// New creates a selector over a catalog. The catalog is copied and never
// modified.
func New(categories []model.Category, opts ...Option) *Selector {
	s := &Selector{
		catalog: cloneCatalog(categories),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dismisser == nil {
		s.dismisser = NewDismisser()
	}
	if s.catalog.Admits(s.initial) {
		s.filter = s.initial
	}

	s.desktop = &DesktopController{sel: s}
	s.mobile = &MobileController{sel: s}
	return s
}

// Filter returns the current filter state.
func (s *Selector) Filter() model.FilterState {
	return s.filter
}

// Catalog returns the catalog the selector resolves against.
func (s *Selector) Catalog() model.Catalog {
	return s.catalog
}

// Desktop returns the flyout controller.
func (s *Selector) Desktop() *DesktopController {
	return s.desktop
}

// Mobile returns the accordion controller.
func (s *Selector) Mobile() *MobileController {
	return s.mobile
}

// Dismisser returns the shared outside-interaction dismisser.
func (s *Selector) Dismisser() *Dismisser {
	return s.dismisser
}

// Active returns the modality currently attached to the dismisser.
func (s *Selector) Active() Modality {
	return s.active
}

// Activate makes one modality current: its controller is mounted on the
// dismisser with the given container and the other controller is closed
// and unmounted.
func (s *Selector) Activate(m Modality, container Container) {
	switch m {
	case ModalityMobile:
		s.desktop.unmount()
		s.desktop.Reset()
		s.mobile.mount(container)
	default:
		s.mobile.unmount()
		s.mobile.Reset()
		s.desktop.mount(container)
	}
	if s.active != m {
		common.LogDebug("selector modality changed", common.Fields{"from": s.active, "to": m})
	}
	s.active = m
}

// Close unmounts both controllers from the dismisser.
func (s *Selector) Close() {
	s.desktop.unmount()
	s.mobile.unmount()
}

// SetCatalog replaces the catalog after a refetch. Open menus are closed
// because their ids may no longer exist; the filter is kept and renders as
// unselected if it went stale.
func (s *Selector) SetCatalog(categories []model.Category) {
	s.catalog = cloneCatalog(categories)
	s.desktop.Reset()
	s.mobile.Reset()
}

// SelectedCategory returns the catalog entry for the filter's category.
// A stale or empty filter yields no match.
func (s *Selector) SelectedCategory() (model.Category, bool) {
	return s.catalog.FindCategory(s.filter.Category)
}

// IsSelected reports whether the category is the filter's category.
func (s *Selector) IsSelected(categoryID string) bool {
	if categoryID == model.AllCategoryID {
		return s.filter.IsEmpty() || !s.catalog.Admits(s.filter)
	}
	cat, ok := s.SelectedCategory()
	return ok && cat.ID == categoryID
}

// Summary renders the breadcrumb for the current filter.
func (s *Selector) Summary(locale model.Locale) string {
	return Breadcrumb(s.catalog, s.filter, locale)
}

// ClearFilter resets the filter to empty and closes every menu in both
// modalities. Calling it again has no further effect.
func (s *Selector) ClearFilter() {
	s.desktop.Reset()
	s.mobile.Reset()

	if s.filter.IsEmpty() {
		return
	}
	s.filter = model.FilterState{}
	common.LogDebug("filter cleared", nil)
	s.notify()
}

// commit finalizes a filter proposed by a controller. Filters that break the
// refinement chain or name levels missing from the catalog are dropped.
func (s *Selector) commit(source Modality, f model.FilterState) bool {
	if !s.catalog.Admits(f) {
		common.LogDebug("rejected filter selection", common.Fields{"modality": source, "filter": f.String()})
		return false
	}

	s.filter = f
	common.LogDebug("filter committed", common.Fields{"modality": source, "filter": f.String()})
	s.notify()
	return true
}

func (s *Selector) notify() {
	if s.onChange != nil {
		s.onChange(s.filter)
	}
}

func (s *Selector) findCategory(id string) (model.Category, bool) {
	return s.catalog.FindCategory(id)
}

func cloneCatalog(categories []model.Category) model.Catalog {
	out := make(model.Catalog, len(categories))
	for i, cat := range categories {
		c := cat
		c.OriginTypes = make([]model.OriginType, len(cat.OriginTypes))
		for j, origin := range cat.OriginTypes {
			o := origin
			o.SubCategories = append([]model.SubCategory(nil), origin.SubCategories...)
			c.OriginTypes[j] = o
		}
		out[i] = c
	}
	return out
}
