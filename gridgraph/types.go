// Package gridgraph defines the grid and adjacency types
// for the gridgraph subpackage of github.com/katalvlaran/gridroute.
package gridgraph

// Direction is a bit in a vertex's link mask. Each vertex has at most
// one neighbor per direction.
type Direction uint8

const (
	// Up links v to v-cols.
	Up Direction = 1 << iota
	// Left links v to v-1.
	Left
	// Right links v to v+1.
	Right
	// Down links v to v+cols.
	Down
)

// directions lists the four directions in ascending neighbor-index order.
var directions = [4]Direction{Up, Left, Right, Down}

// opposite returns the direction pointing back along d.
func (d Direction) opposite() Direction {
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

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Grid is a rows×cols occupancy map stored row-major.
// occupancy[i] == true means cell i is blocked. A Grid is immutable once built.
type Grid struct {
	rows, cols int
	occupancy  []bool
}

// Adjacency is the implicit 4-connected graph of a Grid.
// links[v] holds one Direction bit per open edge of vertex v.
// Edges are symmetric: if v links Right to v+1, v+1 links Left to v.
type Adjacency struct {
	rows, cols int
	links      []Direction
}
