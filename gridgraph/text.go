package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	freeCell    = '.'
	blockedCell = '#'
)

// ParseText reads a grid in plain-text form: one row per line,
// '.' or '0' for a free cell, '#' or '1' for a blocked cell.
// Blank lines and surrounding whitespace are ignored.
func ParseText(r io.Reader) (*Grid, error) {
	var rows [][]bool
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]bool, 0, len(text))
		for col, ch := range text {
			switch ch {
			case freeCell, '0':
				row = append(row, false)
			case blockedCell, '1':
				row = append(row, true)
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadCell, ch, line, col+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read text grid: %w", err)
	}

	return FromRows(rows)
}

// String renders the grid in the format accepted by ParseText.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Size() + g.rows)
	for i, blocked := range g.occupancy {
		if blocked {
			sb.WriteByte(blockedCell)
		} else {
			sb.WriteByte(freeCell)
		}
		if (i+1)%g.cols == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
