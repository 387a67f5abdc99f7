package heatmap

import (
	"math"
	"popdiff/api/services/fst"
)

// grid adapts an fst.Matrix to plotter.GridXYZ. Column c is population c,
// row r is population r, drawn top to bottom.
type grid struct {
	m *fst.Matrix
	n int

	min float64
	max float64
}

func newGrid(m *fst.Matrix) *grid {
	g := &grid{m: m, n: m.Len(), min: math.Inf(1), max: math.Inf(-1)}

	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			v := m.AtIndex(i, j)
			if math.IsNaN(v) {
				continue
			}
			g.min = math.Min(g.min, v)
			g.max = math.Max(g.max, v)
		}
	}

	switch {
	case math.IsInf(g.min, 1):
		g.min, g.max = 0, 1
	case g.min == g.max:
		// a flat range would divide by zero when mapping to colors
		g.min, g.max = g.min-0.5, g.max+0.5
	}

	return g
}

func (g *grid) Dims() (c, r int) { return g.n, g.n }

func (g *grid) Z(c, r int) float64 { return g.m.AtIndex(r, c) }

func (g *grid) X(c int) float64 { return float64(c) }

func (g *grid) Y(r int) float64 { return float64(g.n - 1 - r) }

func (g *grid) Min() float64 { return g.min }

func (g *grid) Max() float64 { return g.max }
