// Package gesture implements the drag gesture recognizer used to move
// a frameless window from its top band. It is a two state machine,
// Idle and Dragging, driven by plain press, motion and release
// messages so it stays independent of any windowing system.
package gesture

// Point is a pixel position. Motion and origin points are in root
// (global) coordinates.
type Point struct {
	X int
	Y int
}

// Press describes a pointer button press that may start a drag.
type Press struct {
	// LocalY is the pointer position relative to the window's top edge.
	LocalY int
	// Root is the pointer position in root coordinates.
	Root Point
	// Origin is the window's top left corner in root coordinates at
	// press time.
	Origin Point
	// OverControl is set when the pointer is over one of the window
	// control buttons, which must never start a drag.
	OverControl bool
}

func NewRecognizer(bandHeight int) *Recognizer {
	return &Recognizer{bandHeight: bandHeight}
}

// Recognizer tracks at most one in-flight drag gesture. The anchor is
// the offset from the window origin to the pressed point; it is set
// for exactly the lifetime of a drag.
type Recognizer struct {
	bandHeight int
	anchor     *Point
}

func (r *Recognizer) Dragging() bool {
	return r.anchor != nil
}

// HandlePress transitions Idle to Dragging when the press lands inside
// the band and not on a control. It reports whether a drag started.
func (r *Recognizer) HandlePress(p Press) bool {
	if r.anchor != nil {
		return false
	}
	if p.OverControl || p.LocalY >= r.bandHeight {
		return false
	}

	r.anchor = &Point{
		X: p.Root.X - p.Origin.X,
		Y: p.Root.Y - p.Origin.Y,
	}
	return true
}

// HandleMotion returns the window origin that keeps the anchor under
// the pointer. It reports false while idle.
func (r *Recognizer) HandleMotion(root Point) (Point, bool) {
	if r.anchor == nil {
		return Point{}, false
	}

	return Point{
		X: root.X - r.anchor.X,
		Y: root.Y - r.anchor.Y,
	}, true
}

// HandleRelease clears the anchor. Any release ends the gesture; there
// is no safeguard against a release event that is never delivered.
func (r *Recognizer) HandleRelease() {
	r.anchor = nil
}
