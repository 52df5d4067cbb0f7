// Package spatial implements a uniform-grid neighbour index over a static
// set of 3-D points, ported faithfully from the cell-size-capped,
// clamped-index, symmetric-neighbour-window design of the original
// molecular spatial-search tool.
package spatial

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const maxCellsPerAxis = 100

// Grid is a uniform-grid neighbour index built once over a fixed point set.
type Grid struct {
	points   []r3.Vec
	cellSize float64
	origin   r3.Vec
	maxClamp [3]int64
	gridSize [3]int64
	cells    map[[3]int64][]int32
}

// New builds a grid over points with a desired cell edge length h. The grid
// spans the points' bounding box padded by one cell per side; if the
// resulting grid would exceed 100 cells along any axis, the cell size is
// silently enlarged to cap it there.
func New(points []r3.Vec, h float64) *Grid {
	g := &Grid{points: points, cellSize: h}
	if len(points) == 0 {
		return g
	}
	minP, maxP := points[0], points[0]
	for _, p := range points[1:] {
		minP.X, maxP.X = math.Min(minP.X, p.X), math.Max(maxP.X, p.X)
		minP.Y, maxP.Y = math.Min(minP.Y, p.Y), math.Max(maxP.Y, p.Y)
		minP.Z, maxP.Z = math.Min(minP.Z, p.Z), math.Max(maxP.Z, p.Z)
	}
	maxExtent := math.Max(maxP.X-minP.X, math.Max(maxP.Y-minP.Y, maxP.Z-minP.Z))
	if g.cellSize <= 0 {
		g.cellSize = 1
	}
	if maxExtent/g.cellSize > maxCellsPerAxis {
		g.cellSize = maxExtent / maxCellsPerAxis
	}

	g.origin = r3.Vec{X: minP.X - g.cellSize, Y: minP.Y - g.cellSize, Z: minP.Z - g.cellSize}
	g.maxClamp = g.indexOf(maxP)
	g.gridSize = [3]int64{g.maxClamp[0] + 2, g.maxClamp[1] + 2, g.maxClamp[2] + 2}

	g.cells = make(map[[3]int64][]int32, len(points)/4+1)
	for i, p := range points {
		cell := g.clampedIndexOf(p)
		g.cells[cell] = append(g.cells[cell], int32(i))
	}
	return g
}

// indexOf computes floor((p - origin) / cellSize) without clamping.
func (g *Grid) indexOf(p r3.Vec) [3]int64 {
	return [3]int64{
		int64(math.Floor((p.X - g.origin.X) / g.cellSize)),
		int64(math.Floor((p.Y - g.origin.Y) / g.cellSize)),
		int64(math.Floor((p.Z - g.origin.Z) / g.cellSize)),
	}
}

// clampedIndexOf clamps each component of indexOf to [1, maxClamp] so that
// boundary points land in a non-padding cell.
func (g *Grid) clampedIndexOf(p r3.Vec) [3]int64 {
	idx := g.indexOf(p)
	for d := 0; d < 3; d++ {
		if idx[d] < 1 {
			idx[d] = 1
		}
		if idx[d] > g.maxClamp[d] {
			idx[d] = g.maxClamp[d]
		}
	}
	return idx
}

// Pair is one unordered point pair closer than a queried cutoff.
type Pair struct {
	I, J int32 // I > J
	D2   float64
}

// Pairs enumerates every unordered pair (i, j), i > j, with distance <= d,
// exactly once. It scans each non-padding cell together with its neighbour
// cells within ceil(d/h)+1 layers, filtering by squared distance.
func (g *Grid) Pairs(d float64) iter.Seq[Pair] {
	layers := int64(math.Ceil(d/g.cellSize)) + 1
	d2max := d * d
	return func(yield func(Pair) bool) {
		if len(g.points) == 0 {
			return
		}
		for cz := int64(1); cz <= g.maxClamp[2]; cz++ {
			for cy := int64(1); cy <= g.maxClamp[1]; cy++ {
				for cx := int64(1); cx <= g.maxClamp[0]; cx++ {
					base := [3]int64{cx, cy, cz}
					baseIdxs, ok := g.cells[base]
					if !ok {
						continue
					}
					for dz := -layers; dz <= layers; dz++ {
						for dy := -layers; dy <= layers; dy++ {
							for dx := -layers; dx <= layers; dx++ {
								nb := [3]int64{cx + dx, cy + dy, cz + dz}
								if nb[0] < 1 || nb[0] > g.maxClamp[0] ||
									nb[1] < 1 || nb[1] > g.maxClamp[1] ||
									nb[2] < 1 || nb[2] > g.maxClamp[2] {
									continue
								}
								nbIdxs, ok := g.cells[nb]
								if !ok {
									continue
								}
								if !findCellPairs(g.points, baseIdxs, nbIdxs, d2max, yield) {
									return
								}
							}
						}
					}
				}
			}
		}
	}
}

// findCellPairs enumerates pairs between the points of cell a and cell b.
// The i<=j skip is the sole dedup mechanism: within one cell it avoids
// pairing a point with itself or repeating a pair in both orders; across
// two distinct cells visited from both directions by the symmetric
// neighbour window, it is what prevents each pair being yielded twice.
func findCellPairs(points []r3.Vec, aIdxs, bIdxs []int32, d2max float64, yield func(Pair) bool) bool {
	for _, i := range aIdxs {
		for _, j := range bIdxs {
			if i <= j {
				continue
			}
			d2 := dist2(points[i], points[j])
			if d2 <= d2max {
				if !yield(Pair{I: i, J: j, D2: d2}) {
					return false
				}
			}
		}
	}
	return true
}

// Query returns every point index within d of point i, including i itself
// if it is within range (it always is, at distance 0).
func (g *Grid) Query(i int32, d float64) iter.Seq[int32] {
	layers := int64(math.Ceil(d/g.cellSize)) + 1
	d2max := d * d
	p := g.points[i]
	center := g.clampedIndexOf(p)
	return func(yield func(int32) bool) {
		for dz := -layers; dz <= layers; dz++ {
			for dy := -layers; dy <= layers; dy++ {
				for dx := -layers; dx <= layers; dx++ {
					nb := [3]int64{center[0] + dx, center[1] + dy, center[2] + dz}
					if nb[0] < 1 || nb[0] > g.maxClamp[0] ||
						nb[1] < 1 || nb[1] > g.maxClamp[1] ||
						nb[2] < 1 || nb[2] > g.maxClamp[2] {
						continue
					}
					idxs, ok := g.cells[nb]
					if !ok {
						continue
					}
					for _, j := range idxs {
						if dist2(p, g.points[j]) <= d2max {
							if !yield(j) {
								return
							}
						}
					}
				}
			}
		}
	}
}

func dist2(a, b r3.Vec) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}
