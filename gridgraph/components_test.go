// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"testing"
)

// TestComponents_Simple tests Components on a 3×4 grid.
//
// Grid (# = blocked, . = free):
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions, [1 2 5 4] and [10 11].
func TestComponents_Simple(t *testing.T) {
	g, err := ParseText(stringsReader("#..#\n..##\n##..\n"))
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	comps := g.Components()
	want := [][]int{{1, 2, 5, 4}, {10, 11}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}
}

// TestComponents_NoDiagonals ensures diagonal contact does not join regions.
//
//	. #
//	# .
func TestComponents_NoDiagonals(t *testing.T) {
	g, _ := NewGrid(2, 2, []bool{false, true, true, false})
	comps := g.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
}

// TestComponents_EdgeCases tests edge cases:
//   - completely blocked grid → zero components
//   - single free cell → one component of size 1
func TestComponents_EdgeCases(t *testing.T) {
	g1, _ := NewGrid(2, 2, []bool{true, true, true, true})
	if comps := g1.Components(); len(comps) != 0 {
		t.Errorf("all-blocked: got %d components; want 0", len(comps))
	}

	g2, _ := NewGrid(1, 2, []bool{true, false})
	comps := g2.Components()
	if len(comps) != 1 {
		t.Fatalf("single free: got %d components; want 1", len(comps))
	}
	if !reflect.DeepEqual(comps[0], []int{1}) {
		t.Errorf("single free: component = %v; want [1]", comps[0])
	}
}
