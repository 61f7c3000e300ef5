package selector

// DesktopController drives the flyout menus. Two channels feed it: hover,
// which only changes which submenus are visible, and click, which goes
// through the resolver and may open menus or commit a filter.
type DesktopController struct {
	sel             *Selector
	registration    *Registration
	hoveredCategory string
	hoveredOrigin   string
	menu            MenuState
}

// Menu returns the click-opened menu state.
func (d *DesktopController) Menu() MenuState {
	return d.menu
}

// Hovered returns the hovered category and origin type, if any.
func (d *DesktopController) Hovered() (categoryID, originType string) {
	return d.hoveredCategory, d.hoveredOrigin
}

// Mounted reports whether the controller listens for outside clicks.
func (d *DesktopController) Mounted() bool {
	return d.registration != nil
}

// HoverCategory records the pointer entering a category row. Only rows with
// an expandable origin set become hovered; entering any other row clears
// the hover.
func (d *DesktopController) HoverCategory(categoryID string) {
	cat, ok := d.sel.findCategory(categoryID)
	if !ok || !cat.Expandable() {
		d.hoveredCategory = ""
		d.hoveredOrigin = ""
		return
	}
	if d.hoveredCategory != categoryID {
		d.hoveredOrigin = ""
	}
	d.hoveredCategory = categoryID
}

// HoverOrigin records the pointer entering an origin row inside a visible
// category flyout. The pointer is still inside the category's subtree, so
// the category stays hovered too.
func (d *DesktopController) HoverOrigin(categoryID, originType string) {
	if !d.CategoryMenuVisible(categoryID) {
		return
	}
	cat, ok := d.sel.findCategory(categoryID)
	if !ok {
		return
	}
	if _, ok := cat.FindOrigin(originType); !ok {
		return
	}
	d.hoveredCategory = categoryID
	d.hoveredOrigin = originType
}

// HoverSubCategory records the pointer inside an origin's sub-submenu.
func (d *DesktopController) HoverSubCategory(categoryID, originType string) {
	if !d.OriginMenuVisible(categoryID, originType) {
		return
	}
	d.hoveredCategory = categoryID
	d.hoveredOrigin = originType
}

// LeaveContainer clears hover when the pointer leaves the whole selector.
func (d *DesktopController) LeaveContainer() {
	d.hoveredCategory = ""
	d.hoveredOrigin = ""
}

// ClickCategory resolves a click on a category row.
func (d *DesktopController) ClickCategory(categoryID string) {
	cat, ok := d.sel.findCategory(categoryID)
	if !ok {
		return
	}
	d.apply(ResolveCategory(cat, d.menu))
}

// ClickOrigin resolves a click on an origin row of a visible flyout.
func (d *DesktopController) ClickOrigin(categoryID, originType string) {
	if !d.CategoryMenuVisible(categoryID) {
		return
	}
	cat, ok := d.sel.findCategory(categoryID)
	if !ok {
		return
	}
	d.apply(ResolveOrigin(cat, originType, d.menu))
}

// ClickSubCategory commits a leaf. The sub-category's origin flyout must be
// visible, otherwise the click is ignored.
func (d *DesktopController) ClickSubCategory(categoryID, originType, subCategory string) {
	if !d.OriginMenuVisible(categoryID, originType) {
		return
	}
	cat, ok := d.sel.findCategory(categoryID)
	if !ok {
		return
	}
	d.apply(ResolveSubCategory(cat, originType, subCategory))
}

// OutsideClick closes every click-opened menu. Hover visibility is left to
// the pointer and the filter is never touched.
func (d *DesktopController) OutsideClick() {
	d.menu = Closed()
}

// Reset closes everything, hover included.
func (d *DesktopController) Reset() {
	d.menu = Closed()
	d.hoveredCategory = ""
	d.hoveredOrigin = ""
}

// CategoryMenuVisible reports whether a category's flyout is rendered:
// it is hovered or click-opened.
func (d *DesktopController) CategoryMenuVisible(categoryID string) bool {
	if categoryID == "" {
		return false
	}
	return d.hoveredCategory == categoryID || d.menu.IsCategoryOpen(categoryID)
}

// OriginMenuVisible reports whether an origin's sub-submenu is rendered.
func (d *DesktopController) OriginMenuVisible(categoryID, originType string) bool {
	if !d.CategoryMenuVisible(categoryID) {
		return false
	}
	hovered := d.hoveredCategory == categoryID && d.hoveredOrigin == originType
	return hovered || d.menu.IsOriginOpen(categoryID, originType)
}

// Flyout returns the category and origin whose flyouts the terminal draws.
// Only one category flyout fits on screen, so a hovered category is drawn
// in preference to a click-opened one.
func (d *DesktopController) Flyout() (categoryID, originType string) {
	categoryID = d.hoveredCategory
	if categoryID == "" {
		categoryID, _ = d.menu.OpenCategory()
	}
	if categoryID == "" {
		return "", ""
	}

	if d.hoveredCategory == categoryID && d.hoveredOrigin != "" {
		return categoryID, d.hoveredOrigin
	}
	if cat, origin, ok := d.menu.OpenOrigin(); ok && cat == categoryID {
		return categoryID, origin
	}
	return categoryID, ""
}

func (d *DesktopController) apply(a Action) {
	switch a.Kind {
	case ActionNone:
		return
	case ActionSetFilter:
		if d.sel.commit(ModalityDesktop, a.Filter) {
			d.Reset()
		}
	default:
		d.menu = d.menu.Apply(a)
	}
}

func (d *DesktopController) mount(container Container) {
	if d.registration != nil {
		return
	}
	d.registration = d.sel.dismisser.Attach(container, d.OutsideClick)
}

func (d *DesktopController) unmount() {
	d.registration.Detach()
	d.registration = nil
}
