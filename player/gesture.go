package player

// SwipeThreshold is the vertical drag distance, in display units, beyond
// which a drag commits to an advance.
const SwipeThreshold = 50.0

// Direction selects which way the carousel advances.
type Direction int

const (
	// DirectionNone is the zero direction; no advance.
	DirectionNone Direction = iota
	// DirectionNext advances to the following feed entry.
	DirectionNext
	// DirectionPrev advances to the preceding feed entry.
	DirectionPrev
)

// Gesture tracks one vertical drag. Distance is measured as start minus
// current position, so a finger moving up yields a positive distance.
type Gesture struct {
	startY   float64
	dragging bool
	distance float64
}

// Begin starts tracking a drag at the given vertical position.
func (g *Gesture) Begin(y float64) {
	g.startY = y
	g.dragging = true
	g.distance = 0
}

// Move updates the drag and returns the visual offset the active slide
// should be translated by (negative when dragging up). Returns 0 when no
// drag is in progress.
func (g *Gesture) Move(y float64) float64 {
	if !g.dragging {
		return 0
	}
	g.distance = g.startY - y
	return -g.distance
}

// End finishes the drag and returns the committed direction: next when the
// finger moved up past the threshold, prev when it moved down past it, and
// none for anything shorter (the drag is visually reverted by the caller).
func (g *Gesture) End() Direction {
	if !g.dragging {
		return DirectionNone
	}
	g.dragging = false

	distance := g.distance
	g.distance = 0

	switch {
	case distance > SwipeThreshold:
		return DirectionNext
	case distance < -SwipeThreshold:
		return DirectionPrev
	default:
		return DirectionNone
	}
}
