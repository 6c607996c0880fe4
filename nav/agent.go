package nav

import "github.com/milk9111/fps/common"

const (
	defaultArriveRadius = 0.25
	defaultMaxNodes     = 4096
)

// Agent follows a grid path for one actor and satisfies
// combat.PathProvider. Locate reports the actor's current position.
type Agent struct {
	grid         *Grid
	locate       func() common.Vec3
	ArriveRadius float64
	MaxNodes     int

	destination common.Vec3
	goal        Cell
	path        []common.Vec3
	active      bool
}

func NewAgent(grid *Grid, locate func() common.Vec3) *Agent {
	return &Agent{
		grid:         grid,
		locate:       locate,
		ArriveRadius: defaultArriveRadius,
		MaxNodes:     defaultMaxNodes,
	}
}

// SetDestination plans toward pos. Re-setting a destination inside the same
// goal cell only moves the final waypoint.
func (a *Agent) SetDestination(pos common.Vec3) {
	if a == nil || a.grid == nil || a.locate == nil {
		return
	}
	goal := a.grid.CellAt(pos)
	a.destination = pos
	if a.active && goal == a.goal && len(a.path) > 0 {
		a.path[len(a.path)-1] = pos
		return
	}

	a.goal = goal
	a.active = true
	a.path = a.path[:0]

	cells := a.grid.FindPath(a.grid.CellAt(a.locate()), goal, a.MaxNodes)
	if len(cells) == 0 {
		a.active = false
		return
	}
	for _, c := range cells[1:] {
		a.path = append(a.path, a.grid.Center(c))
	}
	if len(a.path) == 0 {
		a.path = append(a.path, pos)
		return
	}
	a.path[len(a.path)-1] = pos
}

// NextWaypoint returns the first waypoint the actor hasn't reached yet.
func (a *Agent) NextWaypoint() (common.Vec3, bool) {
	if a == nil || !a.active || a.locate == nil {
		return common.Vec3{}, false
	}
	pos := a.locate()
	for len(a.path) > 0 {
		wp := a.path[0]
		if common.Distance(pos.Horizontal(), wp.Horizontal()) > a.ArriveRadius {
			return common.Vec3{X: wp.X, Y: pos.Y, Z: wp.Z}, true
		}
		a.path = a.path[1:]
	}
	a.active = false
	return common.Vec3{}, false
}

// Path returns the remaining waypoints, for debug drawing.
func (a *Agent) Path() []common.Vec3 {
	if a == nil {
		return nil
	}
	return a.path
}

func (a *Agent) Destination() common.Vec3 {
	return a.destination
}
