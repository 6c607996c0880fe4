package nav

import (
	"container/heap"
	"math"
)

// FindPath runs A* over 4-connected cells. The result includes both ends;
// nil means no route. maxNodes caps the search so a sealed-off goal can't
// stall a tick.
func (g *Grid) FindPath(start, goal Cell, maxNodes int) []Cell {
	if g == nil || !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}
	if g.Blocked(start) || g.Blocked(goal) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}
	if maxNodes <= 0 {
		maxNodes = g.cols * g.rows
	}

	open := &openSet{}
	heap.Init(open)

	cameFrom := make([]int, g.cols*g.rows)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	gScore := make([]float64, g.cols*g.rows)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}
	startIdx := g.index(start)
	goalIdx := g.index(goal)
	gScore[startIdx] = 0
	heap.Push(open, &openItem{cell: start, f: heuristic(start, goal)})

	for expanded := 0; open.Len() > 0 && expanded < maxNodes; expanded++ {
		cur := heap.Pop(open).(*openItem).cell
		curIdx := g.index(cur)
		if curIdx == goalIdx {
			return g.reconstruct(cameFrom, startIdx, goalIdx)
		}

		for _, n := range g.neighbors(cur) {
			idx := g.index(n)
			tentative := gScore[curIdx] + 1
			if tentative < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentative
				heap.Push(open, &openItem{cell: n, f: tentative + heuristic(n, goal)})
			}
		}
	}
	return nil
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

func (g *Grid) reconstruct(cameFrom []int, startIdx, goalIdx int) []Cell {
	path := make([]Cell, 0, 32)
	for cur := goalIdx; cur != -1; cur = cameFrom[cur] {
		path = append(path, Cell{Col: cur % g.cols, Row: cur / g.cols})
		if cur == startIdx {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (g *Grid) neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := Cell{Col: c.Col + d.Col, Row: c.Row + d.Row}
		if !g.Blocked(n) {
			out = append(out, n)
		}
	}
	return out
}

func heuristic(a, b Cell) float64 {
	return math.Abs(float64(a.Col-b.Col)) + math.Abs(float64(a.Row-b.Row))
}

type openItem struct {
	cell  Cell
	f     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
