package core

// Heading is a unit vector on the grid. The zero value doubles as the
// "no action" sentinel used for terminal states.
type Heading struct {
	X int
	Y int
}

var (
	East  = Heading{1, 0}
	North = Heading{0, 1}
	West  = Heading{-1, 0}
	South = Heading{0, -1}

	// NoAction is the only action available in a terminal state.
	NoAction = Heading{}
)

var orientations = [4]Heading{East, North, West, South}

// Orientations returns the four headings in scan order (east, north,
// west, south). The order is fixed so that argmax tie-breaking stays
// deterministic.
func Orientations() []Heading {
	out := make([]Heading, len(orientations))
	copy(out, orientations[:])
	return out
}

func (h Heading) IsNoAction() bool {
	return h == NoAction
}

func (h Heading) index() int {
	for i, o := range orientations {
		if o == h {
			return i
		}
	}
	return -1
}

func (h Heading) turn(inc int) Heading {
	i := h.index()
	if i < 0 {
		return h
	}
	return orientations[(i+inc+len(orientations))%len(orientations)]
}

// TurnLeft returns the heading 90 degrees counter-clockwise of h.
func (h Heading) TurnLeft() Heading {
	return h.turn(1)
}

// TurnRight returns the heading 90 degrees clockwise of h.
func (h Heading) TurnRight() Heading {
	return h.turn(-1)
}

// Arrow returns the display glyph for the heading.
func (h Heading) Arrow() string {
	switch h {
	case East:
		return ">"
	case North:
		return "^"
	case West:
		return "<"
	case South:
		return "v"
	}
	return "."
}

func (h Heading) String() string {
	switch h {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	}
	return "none"
}
