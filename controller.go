package mockup

import (
	"fmt"
	stdimage "image"
)

// EventKind identifies an input event delivered to the controller.
type EventKind uint8

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

var eventKindNames = [...]string{
	PointerDown:  "pointer-down",
	PointerMove:  "pointer-move",
	PointerUp:    "pointer-up",
	PointerLeave: "pointer-leave",
	TouchStart:   "touch-start",
	TouchMove:    "touch-move",
	TouchEnd:     "touch-end",
	TouchCancel:  "touch-cancel",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// isTouch reports whether k is one of the touch events.
func (k EventKind) isTouch() bool {
	return k >= TouchStart
}

// Event is a pointer or touch event in output pixel space. For touch
// events X, Y are the first touch and Touches is the number of active
// touches.
type Event struct {
	Kind    EventKind
	X, Y    float64
	Touches int
}

// Pos returns the event position.
func (e Event) Pos() Point { return Point{X: e.X, Y: e.Y} }

// singleTouch reports whether a touch event carries exactly one finger.
// Pointer events always qualify.
func (e Event) singleTouch() bool {
	return !e.Kind.isTouch() || e.Touches == 1
}

// Effect tells the event source what a transition requires.
type Effect struct {
	// Redraw asks for one preview render.
	Redraw bool

	// PreventDefault asks the platform to suppress its default handling,
	// such as page scrolling during a touch drag.
	PreventDefault bool
}

// inside reports whether p lies within r.
func inside(p Point, r stdimage.Rectangle) bool {
	return p.X >= float64(r.Min.X) && p.X < float64(r.Max.X) &&
		p.Y >= float64(r.Min.Y) && p.Y < float64(r.Max.Y)
}

// Step is the drag state machine. It returns the next state and the
// effect of ev; s is never modified. bounds is the canvas area in
// which a drag may start.
//
//	Idle     --down/1-touch start in bounds-->  Dragging
//	Dragging --move/1-touch move-->             Dragging (offset follows)
//	Dragging --up/leave/touch end/cancel-->     Idle
//
// Events not listed leave the state unchanged.
func Step(s TransformState, ev Event, bounds stdimage.Rectangle) (TransformState, Effect) {
	switch ev.Kind {
	case PointerDown, TouchStart:
		if !ev.singleTouch() || !inside(ev.Pos(), bounds) {
			return s, Effect{}
		}
		s.Dragging = true
		s.Anchor = ev.Pos().Sub(s.Offset())
		return s, Effect{}

	case PointerMove, TouchMove:
		if !s.Dragging || !ev.singleTouch() {
			return s, Effect{}
		}
		off := ev.Pos().Sub(s.Anchor)
		s.X, s.Y = off.X, off.Y
		return s, Effect{Redraw: true, PreventDefault: ev.Kind.isTouch()}

	case PointerUp, PointerLeave, TouchEnd, TouchCancel:
		s.Dragging = false
		return s, Effect{}
	}
	return s, Effect{}
}

// Zoom changes the scale of a w x h user image while keeping its visual
// center fixed. It works in either drag state.
func Zoom(s TransformState, scale float64, w, h int) (TransformState, error) {
	if !(scale > 0) {
		return s, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	d := s.Scale - scale
	s.X += float64(w) / 2 * d
	s.Y += float64(h) / 2 * d
	s.Scale = scale
	return s, nil
}

// Controller applies input events to a transform state and requests a
// redraw for every event whose effect needs one. A failed redraw does
// not roll the state back; its error is returned to the caller.
//
// Controller is not safe for concurrent use.
type Controller struct {
	state  TransformState
	bounds stdimage.Rectangle
	imageW int
	imageH int
	redraw func(TransformState) error
}

// NewController creates a controller for a w x h user image dragged
// within bounds. redraw may be nil.
func NewController(initial TransformState, bounds stdimage.Rectangle, w, h int, redraw func(TransformState) error) *Controller {
	return &Controller{
		state:  initial,
		bounds: bounds,
		imageW: w,
		imageH: h,
		redraw: redraw,
	}
}

// State returns the current transform state.
func (c *Controller) State() TransformState {
	return c.state
}

// Handle applies ev and redraws if needed.
func (c *Controller) Handle(ev Event) (Effect, error) {
	next, eff := Step(c.state, ev, c.bounds)
	if next.Dragging != c.state.Dragging {
		Logger().Debug("drag state changed", "event", ev.Kind, "dragging", next.Dragging)
	}
	c.state = next
	if !eff.Redraw {
		return eff, nil
	}
	return eff, c.notifyRedraw()
}

// Zoom sets the scale around the image center and redraws.
func (c *Controller) Zoom(scale float64) error {
	next, err := Zoom(c.state, scale, c.imageW, c.imageH)
	if err != nil {
		return err
	}
	c.state = next
	return c.notifyRedraw()
}

func (c *Controller) notifyRedraw() error {
	if c.redraw == nil {
		return nil
	}
	return c.redraw(c.state)
}
