package gridgraph

// Build converts g into its 4-connected adjacency.
// For every vertex v it inspects the left, right, up and down neighbors
// that exist within the grid boundaries, and marks the edge in both
// directions as open only if neither cell is blocked. Blocked cells keep
// their vertex but end up with no edges.
//
// Complexity: O(rows×cols) time, one byte per vertex.
func Build(g *Grid) *Adjacency {
	a := &Adjacency{
		rows:  g.rows,
		cols:  g.cols,
		links: make([]Direction, g.Size()),
	}
	for v := range a.links {
		row, col := g.Coordinate(v)
		if col != 0 {
			a.set(g, v, Left)
		}
		if col < g.cols-1 {
			a.set(g, v, Right)
		}
		if row != 0 {
			a.set(g, v, Up)
		}
		if row < g.rows-1 {
			a.set(g, v, Down)
		}
	}

	return a
}

// set writes the symmetric link between v and its neighbor in direction d.
func (a *Adjacency) set(g *Grid, v int, d Direction) {
	u := a.step(v, d)
	open := !g.occupancy[v] && !g.occupancy[u]
	if open {
		a.links[v] |= d
		a.links[u] |= d.opposite()
	} else {
		a.links[v] &^= d
		a.links[u] &^= d.opposite()
	}
}

// step returns the index one move from v in direction d, without bounds checks.
func (a *Adjacency) step(v int, d Direction) int {
	switch d {
	case Up:
		return v - a.cols
	case Left:
		return v - 1
	case Right:
		return v + 1
	default:
		return v + a.cols
	}
}

// Order returns the number of vertices, including blocked ones.
func (a *Adjacency) Order() int {
	return len(a.links)
}

// Rows returns the number of grid rows the adjacency was built from.
func (a *Adjacency) Rows() int { return a.rows }

// Cols returns the number of grid columns the adjacency was built from.
func (a *Adjacency) Cols() int { return a.cols }

// Links returns the open-edge mask of vertex v.
func (a *Adjacency) Links(v int) Direction {
	return a.links[v]
}

// HasEdge reports whether u and v are joined by an open edge.
// Out-of-range vertices have no edges.
// Complexity: O(1).
func (a *Adjacency) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= len(a.links) || v >= len(a.links) {
		return false
	}
	var d Direction
	switch v - u {
	case -a.cols:
		d = Up
	case a.cols:
		d = Down
	case -1:
		if u%a.cols == 0 {
			return false
		}
		d = Left
	case 1:
		if v%a.cols == 0 {
			return false
		}
		d = Right
	default:
		return false
	}

	return a.links[u]&d != 0
}

// Degree returns the number of open edges of vertex v.
func (a *Adjacency) Degree(v int) int {
	n := 0
	for _, d := range directions {
		if a.links[v]&d != 0 {
			n++
		}
	}

	return n
}

// AppendNeighbors appends the open neighbors of v to dst in ascending
// index order (up, left, right, down) and returns the extended slice.
func (a *Adjacency) AppendNeighbors(dst []int, v int) []int {
	mask := a.links[v]
	for _, d := range directions {
		if mask&d != 0 {
			dst = append(dst, a.step(v, d))
		}
	}

	return dst
}
