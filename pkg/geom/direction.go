package geom

import "iter"

// Direction is one of the four cardinal displacements.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directions = [...]Direction{Up, Down, Left, Right}

// Directions yields Up, Down, Left and Right, in that order.
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, d := range directions {
			if !yield(d) {
				return
			}
		}
	}
}

// Step returns the unit displacement of d.
func (d Direction) Step() Coo {
	switch d {
	case Up:
		return Coo{0, -1}
	case Down:
		return Coo{0, 1}
	case Left:
		return Coo{-1, 0}
	default:
		return Coo{1, 0}
	}
}

// TurnRight returns the direction after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// TurnLeft returns the direction after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}
