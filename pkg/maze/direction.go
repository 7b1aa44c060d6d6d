package maze

// Direction is one of the four moves a gesture can produce.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the four directions in the order gestures are evaluated.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return "NONE"
}

// Delta is the unit step for d.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{Y: -1}
	case Down:
		return Point{Y: 1}
	case Left:
		return Point{X: -1}
	case Right:
		return Point{X: 1}
	}
	return Point{}
}
