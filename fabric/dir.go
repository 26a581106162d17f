package fabric

import "fmt"

// Dir is a port direction on a node.
type Dir int

//go:generate go tool stringer -linecomment -type=Dir
const (
	DIR_UP    = Dir(0) // UP
	DIR_DOWN  = Dir(1) // DOWN
	DIR_LEFT  = Dir(2) // LEFT
	DIR_RIGHT = Dir(3) // RIGHT
)

// Around is the fixed priority order used to resolve ANY intents.
var Around = [4]Dir{DIR_UP, DIR_LEFT, DIR_RIGHT, DIR_DOWN}

// Opposite returns the direction of the far side of the same edge.
func (d Dir) Opposite() Dir {
	switch d {
	case DIR_UP:
		return DIR_DOWN
	case DIR_DOWN:
		return DIR_UP
	case DIR_LEFT:
		return DIR_RIGHT
	default:
		return DIR_LEFT
	}
}

// Pos is a grid position. Stream nodes sit just outside the grid proper
// (row -1 above, row height below).
type Pos struct {
	X int
	Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Neighbor returns the adjacent position in the given direction.
func (p Pos) Neighbor(d Dir) Pos {
	switch d {
	case DIR_UP:
		return Pos{p.X, p.Y - 1}
	case DIR_DOWN:
		return Pos{p.X, p.Y + 1}
	case DIR_LEFT:
		return Pos{p.X - 1, p.Y}
	default:
		return Pos{p.X + 1, p.Y}
	}
}

// Less orders positions row-major, the canonical order for tie-breaking.
func (p Pos) Less(q Pos) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Port identifies one directional connection point: a position and a side.
type Port struct {
	Pos Pos
	Dir Dir
}

// Opposite returns the port on the far side of the same edge.
func (p Port) Opposite() Port {
	return Port{Pos: p.Pos.Neighbor(p.Dir), Dir: p.Dir.Opposite()}
}
