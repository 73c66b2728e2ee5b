package dock

// Subscription is a handle on a change-notification registration. The zero
// value is a no-op.
type Subscription struct {
	state *subscriptionState
}

type subscriptionState struct {
	cancel func()
}

// Cancel releases the subscription. Cancel is idempotent; cancelling an
// already-cancelled subscription does nothing.
func (s Subscription) Cancel() {
	if s.state == nil || s.state.cancel == nil {
		return
	}
	s.state.cancel()
	s.state.cancel = nil
}

// NewSubscription wraps a cancel function in a Subscription handle. Packages
// with dock-style change notification (the settings store) return the same
// handle type so subscribers manage all registrations uniformly.
func NewSubscription(cancel func()) Subscription {
	return Subscription{state: &subscriptionState{cancel: cancel}}
}

// Dock is an ordered collection of panels at one workspace position. At most
// one panel is active; the active panel is the one shown when the dock is
// open. Mutations notify subscribers synchronously before returning.
type Dock struct {
	position Position
	focus    FocusHandle
	open     bool
	active   int
	panels   []Panel

	nextSubID   int
	subscribers map[int]func()
}

// New creates an empty, closed dock at the given position.
func New(position Position) *Dock {
	return &Dock{
		position:    position,
		focus:       FocusHandle{ID: "dock:" + position.String()},
		active:      -1,
		subscribers: make(map[int]func()),
	}
}

// Position returns the dock's fixed workspace position.
func (d *Dock) Position() Position {
	return d.position
}

// FocusHandle returns the dock's focus target.
func (d *Dock) FocusHandle() FocusHandle {
	return d.focus
}

// ToggleAction returns the action that toggles this dock open or closed.
func (d *Dock) ToggleAction() Action {
	return ToggleDock{Position: d.position}
}

// IsOpen reports whether the dock is open.
func (d *Dock) IsOpen() bool {
	return d.open
}

// ActivePanelIndex returns the index of the active panel, or -1 when the
// dock is empty.
func (d *Dock) ActivePanelIndex() int {
	return d.active
}

// ActivePanel returns the active panel, or nil when the dock is empty.
func (d *Dock) ActivePanel() Panel {
	return d.PanelAt(d.active)
}

// Panels returns the dock's panels in stored order. Callers must not modify
// the returned slice.
func (d *Dock) Panels() []Panel {
	return d.panels
}

// PanelAt returns the panel at index i, or nil when i is out of range.
func (d *Dock) PanelAt(i int) Panel {
	if i < 0 || i >= len(d.panels) {
		return nil
	}
	return d.panels[i]
}

// PanelIndex returns the index of the panel with p's name, or -1.
func (d *Dock) PanelIndex(p Panel) int {
	if p == nil {
		return -1
	}
	for i, existing := range d.panels {
		if existing.Name() == p.Name() {
			return i
		}
	}
	return -1
}

// AddPanel appends p to the dock. The first panel added becomes active.
func (d *Dock) AddPanel(p Panel) {
	if p == nil {
		return
	}
	d.panels = append(d.panels, p)
	if d.active < 0 {
		d.active = 0
	}
	d.notify()
}

// RemovePanel removes the panel with p's name. The active index follows the
// panel it pointed at where possible, clamping when the active panel itself
// is removed. Removing an absent panel is a no-op.
func (d *Dock) RemovePanel(p Panel) {
	i := d.PanelIndex(p)
	if i < 0 {
		return
	}
	d.panels = append(d.panels[:i], d.panels[i+1:]...)
	switch {
	case len(d.panels) == 0:
		d.active = -1
	case i < d.active:
		d.active--
	case i == d.active && d.active >= len(d.panels):
		d.active = len(d.panels) - 1
	}
	d.notify()
}

// SetOpen opens or closes the dock. Setting the current state is a no-op
// and does not notify.
func (d *Dock) SetOpen(open bool) {
	if d.open == open {
		return
	}
	d.open = open
	d.notify()
}

// Toggle flips the dock between open and closed.
func (d *Dock) Toggle() {
	d.SetOpen(!d.open)
}

// SetActivePanelIndex makes the panel at index i the active one. Indices
// outside the dock are ignored.
func (d *Dock) SetActivePanelIndex(i int) {
	if i < 0 || i >= len(d.panels) || i == d.active {
		return
	}
	d.active = i
	d.notify()
}

// ActivatePanel makes p the active panel. Returns false when p is not in
// the dock.
func (d *Dock) ActivatePanel(p Panel) bool {
	i := d.PanelIndex(p)
	if i < 0 {
		return false
	}
	d.SetActivePanelIndex(i)
	return true
}

// Subscribe registers fn to run synchronously after every dock mutation.
// The returned subscription stops the notifications when cancelled.
func (d *Dock) Subscribe(fn func()) Subscription {
	id := d.nextSubID
	d.nextSubID++
	d.subscribers[id] = fn
	return NewSubscription(func() { delete(d.subscribers, id) })
}

func (d *Dock) notify() {
	for _, fn := range d.subscribers {
		fn()
	}
}

// Move relocates p from one dock to another, appending it to the
// destination's panel order. Both docks notify their subscribers. Moving a
// panel to its own dock is a no-op.
func Move(p Panel, from, to *Dock) {
	if p == nil || from == nil || to == nil || from == to {
		return
	}
	if from.PanelIndex(p) < 0 {
		return
	}
	from.RemovePanel(p)
	to.AddPanel(p)
}
