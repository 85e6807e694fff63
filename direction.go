package wordsearch

// Direction is an enum representing one of the eight compass directions a
// word can run in.
type Direction int

const (
	DirectionUpLeft Direction = iota
	DirectionUp
	DirectionUpRight
	DirectionRight
	DirectionDownRight
	DirectionDown
	DirectionDownLeft
	DirectionLeft

	numDirections = 8
)

// Directions lists every direction in id order.
var Directions = [numDirections]Direction{
	DirectionUpLeft,
	DirectionUp,
	DirectionUpRight,
	DirectionRight,
	DirectionDownRight,
	DirectionDown,
	DirectionDownLeft,
	DirectionLeft,
}

var directionDeltas = [numDirections]struct{ dRow, dCol int }{
	DirectionUpLeft:    {-1, -1},
	DirectionUp:        {-1, 0},
	DirectionUpRight:   {-1, 1},
	DirectionRight:     {0, 1},
	DirectionDownRight: {1, 1},
	DirectionDown:      {1, 0},
	DirectionDownLeft:  {1, -1},
	DirectionLeft:      {0, -1},
}

var directionNames = [numDirections]string{
	"up-left", "up", "up-right", "right", "down-right", "down", "down-left", "left",
}

// Delta returns the row and column step taken when moving in d.
func (d Direction) Delta() (dRow, dCol int) {
	delta := directionDeltas[d]
	return delta.dRow, delta.dCol
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + numDirections/2) % numDirections
}

func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return "invalid"
	}
	return directionNames[d]
}
