package selector

// MobileController drives the single dropdown panel with accordion rows.
// Every tap inside the panel goes through the resolver; the accordion's
// expanded rows share the MenuState encoding with the desktop flyouts.
type MobileController struct {
	sel          *Selector
	registration *Registration
	expanded     MenuState
	open         bool
}

// DropdownOpen reports whether the dropdown panel is shown.
func (m *MobileController) DropdownOpen() bool {
	return m.open
}

// Expanded returns the accordion's expansion state.
func (m *MobileController) Expanded() MenuState {
	return m.expanded
}

// Mounted reports whether the controller listens for outside taps.
func (m *MobileController) Mounted() bool {
	return m.registration != nil
}

// ToggleDropdown opens or closes the panel. Both directions start from a
// fully collapsed accordion.
func (m *MobileController) ToggleDropdown() {
	m.open = !m.open
	m.expanded = Closed()
}

// TapCategory resolves a tap on a category row.
func (m *MobileController) TapCategory(categoryID string) {
	if !m.open {
		return
	}
	cat, ok := m.sel.findCategory(categoryID)
	if !ok {
		return
	}
	m.apply(ResolveCategory(cat, m.expanded))
}

// TapOrigin resolves a tap on an origin row of the expanded category.
func (m *MobileController) TapOrigin(categoryID, originType string) {
	if !m.open || !m.expanded.IsCategoryOpen(categoryID) {
		return
	}
	cat, ok := m.sel.findCategory(categoryID)
	if !ok {
		return
	}
	m.apply(ResolveOrigin(cat, originType, m.expanded))
}

// TapSubCategory commits a leaf under the expanded origin. Taps on leaves
// of any other origin are ignored.
func (m *MobileController) TapSubCategory(categoryID, originType, subCategory string) {
	if !m.open || !m.expanded.IsOriginOpen(categoryID, originType) {
		return
	}
	cat, ok := m.sel.findCategory(categoryID)
	if !ok {
		return
	}
	m.apply(ResolveSubCategory(cat, originType, subCategory))
}

// OutsideTap closes the dropdown and collapses every row. The filter is
// never touched.
func (m *MobileController) OutsideTap() {
	m.Reset()
}

// Reset closes the dropdown and collapses every row.
func (m *MobileController) Reset() {
	m.open = false
	m.expanded = Closed()
}

func (m *MobileController) apply(a Action) {
	switch a.Kind {
	case ActionNone:
		return
	case ActionSetFilter:
		if m.sel.commit(ModalityMobile, a.Filter) {
			m.Reset()
		}
	default:
		m.expanded = m.expanded.Apply(a)
	}
}

func (m *MobileController) mount(container Container) {
	if m.registration != nil {
		return
	}
	m.registration = m.sel.dismisser.Attach(container, m.OutsideTap)
}

func (m *MobileController) unmount() {
	m.registration.Detach()
	m.registration = nil
}
