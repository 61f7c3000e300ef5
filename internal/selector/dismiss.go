package selector

import (
	"github.com/google/uuid"

	"github.com/Veraticus/bottleshop/internal/common"
)

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell at x, y lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Container decides whether a pointer position is inside the selector.
type Container interface {
	Contains(x, y int) bool
}

// ContainerFunc adapts a function to the Container interface. It is
// evaluated on every dispatch, so it always sees the current layout.
type ContainerFunc func(x, y int) bool

// Contains calls f(x, y).
func (f ContainerFunc) Contains(x, y int) bool {
	return f(x, y)
}

// Region is a container made of several rectangles, such as a menu column
// and its open flyouts.
type Region []Rect

// Contains reports whether any rectangle contains x, y.
func (r Region) Contains(x, y int) bool {
	for _, rect := range r {
		if rect.Contains(x, y) {
			return true
		}
	}
	return false
}

// Registration is a mounted outside-interaction listener.
type Registration struct {
	container Container
	onOutside func()
	owner     *Dismisser
	id        uuid.UUID
}

// ID returns the registration's identity.
func (r *Registration) ID() uuid.UUID {
	return r.id
}

// Detach removes the listener. Detaching twice is a no-op.
func (r *Registration) Detach() {
	if r == nil || r.owner == nil {
		return
	}
	r.owner.remove(r.id)
	r.owner = nil
}

// Dismisser fans pointer presses out to every attached listener whose
// container does not contain the press. It is the one "dismiss on outside
// interaction" capability shared by both modalities.
type Dismisser struct {
	listeners []*Registration
}

// NewDismisser creates a dismisser with no listeners.
func NewDismisser() *Dismisser {
	return &Dismisser{}
}

// Attach registers onOutside to run whenever a press lands outside container.
func (d *Dismisser) Attach(container Container, onOutside func()) *Registration {
	reg := &Registration{
		id:        uuid.New(),
		container: container,
		onOutside: onOutside,
		owner:     d,
	}
	d.listeners = append(d.listeners, reg)
	common.LogDebug("attached outside-interaction listener", common.Fields{"id": reg.id.String(), "listeners": len(d.listeners)})
	return reg
}

// Dispatch delivers a press at x, y and returns how many listeners were dismissed.
func (d *Dismisser) Dispatch(x, y int) int {
	// Listeners may detach while being notified.
	snapshot := append([]*Registration(nil), d.listeners...)

	dismissed := 0
	for _, reg := range snapshot {
		if reg.container != nil && reg.container.Contains(x, y) {
			continue
		}
		common.LogDebug("dismissed on outside press", common.Fields{"id": reg.id.String(), "x": x, "y": y})
		reg.onOutside()
		dismissed++
	}
	return dismissed
}

// DismissAll notifies every listener as if the interaction happened outside.
func (d *Dismisser) DismissAll() {
	snapshot := append([]*Registration(nil), d.listeners...)
	for _, reg := range snapshot {
		reg.onOutside()
	}
}

// Len returns the number of attached listeners.
func (d *Dismisser) Len() int {
	return len(d.listeners)
}

func (d *Dismisser) remove(id uuid.UUID) {
	for i, reg := range d.listeners {
		if reg.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			common.LogDebug("detached outside-interaction listener", common.Fields{"id": id.String(), "listeners": len(d.listeners)})
			return
		}
	}
}
