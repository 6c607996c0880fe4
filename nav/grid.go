package nav

import (
	"math"

	"github.com/milk9111/fps/common"
)

// Cell is a grid coordinate. Row grows with world Z.
type Cell struct {
	Col int
	Row int
}

// Grid is a walkability map over the ground plane, centered on the world
// origin.
type Grid struct {
	cols     int
	rows     int
	cellSize float64
	blocked  []bool
}

// NewGrid builds a grid from text rows where '#' marks a wall.
func NewGrid(rows []string, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := &Grid{cols: cols, rows: len(rows), cellSize: cellSize, blocked: make([]bool, cols*len(rows))}
	for y, r := range rows {
		for x := 0; x < cols; x++ {
			if x >= len(r) || r[x] == '#' {
				g.blocked[y*cols+x] = true
			}
		}
	}
	return g
}

func (g *Grid) Cols() int         { return g.cols }
func (g *Grid) Rows() int         { return g.rows }
func (g *Grid) CellSize() float64 { return g.cellSize }
func (g *Grid) Width() float64    { return float64(g.cols) * g.cellSize }
func (g *Grid) Depth() float64    { return float64(g.rows) * g.cellSize }

func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.cols && c.Row < g.rows
}

func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Row*g.cols+c.Col]
}

// CellAt maps a world position to the cell containing it, clamped to the grid.
func (g *Grid) CellAt(p common.Vec3) Cell {
	gx := int(math.Floor((p.X + g.Width()/2) / g.cellSize))
	gy := int(math.Floor((p.Z + g.Depth()/2) / g.cellSize))
	if gx < 0 {
		gx = 0
	}
	if gy < 0 {
		gy = 0
	}
	if gx >= g.cols {
		gx = g.cols - 1
	}
	if gy >= g.rows {
		gy = g.rows - 1
	}
	return Cell{Col: gx, Row: gy}
}

// Center returns the world position of a cell's center at ground height.
func (g *Grid) Center(c Cell) common.Vec3 {
	half := g.cellSize * 0.5
	return common.Vec3{
		X: float64(c.Col)*g.cellSize + half - g.Width()/2,
		Z: float64(c.Row)*g.cellSize + half - g.Depth()/2,
	}
}

// Walls returns every blocked cell, in row-major order.
func (g *Grid) Walls() []Cell {
	var out []Cell
	for i, b := range g.blocked {
		if b {
			out = append(out, Cell{Col: i % g.cols, Row: i / g.cols})
		}
	}
	return out
}
