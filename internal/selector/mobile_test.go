package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/bottleshop/internal/model"
)

func TestMobileController_Toggle(t *testing.T) {
	sel, _ := newTestSelector(t)
	m := sel.Mobile()

	assert.False(t, m.DropdownOpen())
	m.TapCategory("whisky")
	assert.True(t, m.Expanded().IsClosed(), "taps are ignored while the dropdown is closed")

	m.ToggleDropdown()
	assert.True(t, m.DropdownOpen())

	m.TapCategory("whisky")
	assert.True(t, m.Expanded().IsCategoryOpen("whisky"))

	m.ToggleDropdown()
	assert.False(t, m.DropdownOpen())
	assert.True(t, m.Expanded().IsClosed())

	m.ToggleDropdown()
	assert.True(t, m.Expanded().IsClosed(), "reopening starts collapsed")
}

func TestMobileController_PlainCategoryCommitsAndCloses(t *testing.T) {
	sel, changes := newTestSelector(t)
	m := sel.Mobile()

	m.ToggleDropdown()
	m.TapCategory("wine")
	assert.Equal(t, model.FilterState{Category: "wine"}, sel.Filter())
	assert.False(t, m.DropdownOpen())
	assert.True(t, m.Expanded().IsClosed())

	m.ToggleDropdown()
	m.TapCategory("beer")
	assert.Equal(t, model.FilterState{Category: "beer", OriginType: model.OriginDomestic}, sel.Filter())
	assert.False(t, m.DropdownOpen())
	assert.Len(t, *changes, 2)
}

func TestMobileController_SecondTapCommits(t *testing.T) {
	sel, changes := newTestSelector(t)
	m := sel.Mobile()

	m.ToggleDropdown()
	m.TapCategory("whisky")
	assert.True(t, sel.Filter().IsEmpty())
	assert.Empty(t, *changes)

	m.TapCategory("whisky")
	assert.Equal(t, model.FilterState{Category: "whisky"}, sel.Filter())
	assert.False(t, m.DropdownOpen())
	assert.Len(t, *changes, 1)
}

func TestMobileController_ExpandSwitchesCategory(t *testing.T) {
	sel, _ := newTestSelector(t)
	m := sel.Mobile()

	m.ToggleDropdown()
	m.TapCategory("whisky")
	m.TapOrigin("whisky", model.OriginImported)
	m.TapCategory("vodka")

	assert.True(t, m.Expanded().IsCategoryOpen("vodka"))
	assert.False(t, m.Expanded().IsCategoryOpen("whisky"))
	assert.True(t, m.DropdownOpen())
	assert.True(t, sel.Filter().IsEmpty())
}

func TestMobileController_FullDepth(t *testing.T) {
	sel, changes := newTestSelector(t)
	m := sel.Mobile()

	m.ToggleDropdown()
	m.TapCategory("whisky")
	m.TapOrigin("whisky", model.OriginImported)
	assert.True(t, m.Expanded().IsOriginOpen("whisky", model.OriginImported))
	assert.True(t, sel.Filter().IsEmpty())

	m.TapSubCategory("whisky", model.OriginImported, "blended")
	assert.Equal(t, model.FilterState{
		Category:    "whisky",
		OriginType:  model.OriginImported,
		SubCategory: "blended",
	}, sel.Filter())
	assert.False(t, m.DropdownOpen())
	assert.Len(t, *changes, 1)
}

func TestMobileController_RejectsCollapsedRows(t *testing.T) {
	sel, changes := newTestSelector(t)
	m := sel.Mobile()

	m.ToggleDropdown()
	m.TapOrigin("whisky", model.OriginImported)
	assert.True(t, m.Expanded().IsClosed())

	m.TapCategory("whisky")
	m.TapSubCategory("whisky", model.OriginImported, "single malt")
	assert.True(t, sel.Filter().IsEmpty())

	m.TapOrigin("whisky", model.OriginImported)
	m.TapSubCategory("whisky", model.OriginImported, "bourbon")
	assert.True(t, sel.Filter().IsEmpty())
	assert.True(t, m.DropdownOpen())
	assert.Empty(t, *changes)
}

func TestMobileController_OutsideTap(t *testing.T) {
	sel, changes := newTestSelector(t)
	m := sel.Mobile()

	sel.Activate(ModalityMobile, Region{{X: 0, Y: 0, Width: 30, Height: 12}})
	require.True(t, m.Mounted())
	require.False(t, sel.Desktop().Mounted())

	m.ToggleDropdown()
	m.TapCategory("whisky")
	m.TapOrigin("whisky", model.OriginImported)

	sel.Dismisser().Dispatch(10, 3)
	assert.True(t, m.DropdownOpen(), "tap inside keeps the dropdown")

	sel.Dismisser().Dispatch(10, 20)
	assert.False(t, m.DropdownOpen())
	assert.True(t, m.Expanded().IsClosed())
	assert.True(t, sel.Filter().IsEmpty())
	assert.Empty(t, *changes)
}
