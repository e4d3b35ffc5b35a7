// internal/drag/drag.go
//
// Two-state controller translating pointer gestures into image offsets.
// Each move is measured against the gesture's starting point, not the
// previous sample, so dropped or reordered move events cannot accumulate
// error. Offsets are unbounded; the image may be dragged fully out of
// view.
package drag

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

type State string

const (
	StateIdle     State = "idle"
	StateDragging State = "dragging"
)

type Controller struct {
	state        State
	startPointer Point
	startOffset  Point
}

func NewController() *Controller {
	return &Controller{state: StateIdle}
}

func (c *Controller) State() State {
	return c.state
}

// Down begins a gesture, recording the pointer position and the offset in
// effect at that moment. Whether the gesture is permitted at all (primary
// instance, image present, hit over the image region) is the caller's
// decision.
func (c *Controller) Down(pointer, startingOffset Point) {
	c.state = StateDragging
	c.startPointer = pointer
	c.startOffset = startingOffset
}

// Move returns the offset for the current pointer position:
// startingOffset + (pointer - startingPointer). ok is false when no
// gesture is active.
func (c *Controller) Move(pointer Point) (Point, bool) {
	if c.state != StateDragging {
		return Point{}, false
	}
	return c.startOffset.Add(pointer.Sub(c.startPointer)), true
}

// Up ends the gesture. The last emitted offset stays in effect; a
// pointer leaving the region is treated the same way.
func (c *Controller) Up() {
	c.state = StateIdle
}
