package world

import (
	"math"
	"sort"

	"github.com/pie2d/sim/internal/body"
)

// cellGrid buckets bodies by position so the collision phase only visits
// pairs that can touch. Cells are at least as wide as the largest diameter,
// so any overlapping pair sits in the same or an adjacent cell.
// Rebuilt every tick from the tick goroutine; no locks.

// gridMinBodies is the body count from which the collision phase uses the grid.
const gridMinBodies = 32

// maxCellCoord keeps cell coordinates well inside int64 and float precision.
const maxCellCoord = 1 << 52

type cellKey struct {
	cx int64
	cy int64
}

type cellGrid struct {
	size   float64
	cells  map[cellKey][]int // cell → order indices, ascending
	keys   []cellKey         // order index → cell
	nearby []int             // scratch for neighbours
}

func newCellGrid() *cellGrid {
	return &cellGrid{
		cells: make(map[cellKey][]int),
	}
}

func toCellCoord(v, size float64) (int64, bool) {
	c := math.Floor(v / size)
	if math.IsNaN(c) || math.Abs(c) > maxCellCoord {
		return 0, false
	}
	return int64(c), true
}

// rebuild buckets bodies by order index. It returns false when positions or
// radii cannot be bucketed; the caller then checks all pairs.
func (g *cellGrid) rebuild(bodies []*body.Body) bool {
	clear(g.cells)
	g.keys = g.keys[:0]

	maxR := 0.0
	for _, b := range bodies {
		maxR = math.Max(maxR, b.Radius())
	}
	// Padded so rounding in the division cannot split an overlapping pair
	// across non-adjacent cells.
	g.size = 2 * maxR * (1 + 1e-9)
	if !(g.size > 0) || math.IsInf(g.size, 0) {
		return false
	}

	for i, b := range bodies {
		p := b.Position()
		cx, okX := toCellCoord(p.X, g.size)
		cy, okY := toCellCoord(p.Y, g.size)
		if !okX || !okY {
			return false
		}
		k := cellKey{cx: cx, cy: cy}
		g.keys = append(g.keys, k)
		g.cells[k] = append(g.cells[k], i)
	}
	return true
}

// neighbours returns the order indices in the 3×3 block of cells around body
// i, ascending, excluding i. The slice is reused by the next call.
func (g *cellGrid) neighbours(i int) []int {
	k := g.keys[i]
	g.nearby = g.nearby[:0]
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, j := range g.cells[cellKey{cx: k.cx + dx, cy: k.cy + dy}] {
				if j != i {
					g.nearby = append(g.nearby, j)
				}
			}
		}
	}
	sort.Ints(g.nearby)
	return g.nearby
}
