package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 3, Height: 2}

	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 1), "right edge is exclusive")
	assert.False(t, r.Contains(2, 3), "bottom edge is exclusive")
	assert.False(t, r.Contains(1, 1))
	assert.True(t, Rect{}.Empty())
}

func TestRegion_Contains(t *testing.T) {
	region := Region{
		{X: 0, Y: 0, Width: 10, Height: 5},
		{X: 10, Y: 2, Width: 8, Height: 2},
	}

	assert.True(t, region.Contains(0, 0))
	assert.True(t, region.Contains(12, 3))
	assert.False(t, region.Contains(12, 0))
	assert.False(t, Region(nil).Contains(0, 0))
}

func TestDismisser_Dispatch(t *testing.T) {
	d := NewDismisser()

	var first, second int
	d.Attach(Region{{X: 0, Y: 0, Width: 10, Height: 10}}, func() { first++ })
	d.Attach(ContainerFunc(func(x, _ int) bool { return x >= 20 }), func() { second++ })
	assert.Equal(t, 2, d.Len())

	assert.Equal(t, 1, d.Dispatch(5, 5))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	assert.Equal(t, 1, d.Dispatch(25, 5))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	assert.Equal(t, 2, d.Dispatch(15, 15))
	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestDismisser_Detach(t *testing.T) {
	d := NewDismisser()

	calls := 0
	reg := d.Attach(Region{}, func() { calls++ })
	other := d.Attach(Region{}, func() {})
	assert.NotEqual(t, reg.ID(), other.ID())

	reg.Detach()
	reg.Detach()
	assert.Equal(t, 1, d.Len())

	d.Dispatch(0, 0)
	assert.Equal(t, 0, calls, "detached listener is never called")

	var nilReg *Registration
	assert.NotPanics(t, nilReg.Detach)
}

func TestDismisser_DetachDuringDispatch(t *testing.T) {
	d := NewDismisser()

	var reg *Registration
	calls := 0
	reg = d.Attach(Region{}, func() {
		calls++
		reg.Detach()
	})
	d.Attach(Region{}, func() { calls++ })

	assert.Equal(t, 2, d.Dispatch(1, 1))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, d.Len())
}

func TestDismisser_DismissAll(t *testing.T) {
	d := NewDismisser()

	calls := 0
	d.Attach(Region{{Width: 100, Height: 100}}, func() { calls++ })
	d.DismissAll()
	assert.Equal(t, 1, calls)
}
