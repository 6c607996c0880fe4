package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fps/common"
)

var testRows = []string{
	"#######",
	"#.....#",
	"#.###.#",
	"#.....#",
	"#######",
}

func TestGridCoordinates(t *testing.T) {
	g := NewGrid(testRows, 2)
	assert.Equal(t, 7, g.Cols())
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 14.0, g.Width())

	c := Cell{Col: 1, Row: 1}
	assert.Equal(t, c, g.CellAt(g.Center(c)))
	assert.True(t, g.Blocked(Cell{Col: 0, Row: 0}))
	assert.True(t, g.Blocked(Cell{Col: -1, Row: 2}), "out of bounds counts as blocked")
	assert.False(t, g.Blocked(c))

	// far outside clamps to the edge
	assert.Equal(t, Cell{Col: 6, Row: 4}, g.CellAt(common.Vec3{X: 100, Z: 100}))
}

func TestFindPathAroundWall(t *testing.T) {
	g := NewGrid(testRows, 1)
	path := g.FindPath(Cell{Col: 1, Row: 2}, Cell{Col: 5, Row: 2}, 0)
	require.NotNil(t, path)
	assert.Equal(t, Cell{Col: 1, Row: 2}, path[0])
	assert.Equal(t, Cell{Col: 5, Row: 2}, path[len(path)-1])
	assert.Len(t, path, 7, "shortest detour is 6 steps")

	for i := 1; i < len(path); i++ {
		assert.False(t, g.Blocked(path[i]), "path crosses wall at %v", path[i])
		assert.Equal(t, 1.0, heuristic(path[i-1], path[i]), "path must be 4-connected")
	}
}

func TestFindPathUnreachable(t *testing.T) {
	g := NewGrid([]string{
		"#####",
		"#.#.#",
		"#####",
	}, 1)
	assert.Nil(t, g.FindPath(Cell{Col: 1, Row: 1}, Cell{Col: 3, Row: 1}, 0))
	assert.Nil(t, g.FindPath(Cell{Col: 1, Row: 1}, Cell{Col: 2, Row: 1}, 0), "blocked goal")
	assert.Equal(t, []Cell{{Col: 1, Row: 1}}, g.FindPath(Cell{Col: 1, Row: 1}, Cell{Col: 1, Row: 1}, 0))
}

func TestAgentWalksWaypoints(t *testing.T) {
	g := NewGrid(testRows, 1)
	pos := g.Center(Cell{Col: 1, Row: 2})
	agent := NewAgent(g, func() common.Vec3 { return pos })

	dest := g.Center(Cell{Col: 5, Row: 2})
	agent.SetDestination(dest)
	require.Len(t, agent.Path(), 6)

	steps := 0
	for {
		wp, ok := agent.NextWaypoint()
		if !ok {
			break
		}
		pos = wp
		steps++
		require.Less(t, steps, 20, "agent never arrived")
	}
	assert.Equal(t, 6, steps)
	assert.Equal(t, dest, pos)

	_, ok := agent.NextWaypoint()
	assert.False(t, ok, "arrived agent reports no waypoint")
}

func TestAgentRetargetInsideGoalCell(t *testing.T) {
	g := NewGrid(testRows, 1)
	pos := g.Center(Cell{Col: 1, Row: 1})
	agent := NewAgent(g, func() common.Vec3 { return pos })

	agent.SetDestination(g.Center(Cell{Col: 5, Row: 1}))
	before := len(agent.Path())

	nudged := g.Center(Cell{Col: 5, Row: 1}).Add(common.Vec3{X: 0.2})
	agent.SetDestination(nudged)
	assert.Len(t, agent.Path(), before)
	assert.Equal(t, nudged, agent.Path()[before-1])
	assert.Equal(t, nudged, agent.Destination())
}

func TestAgentWithoutRoute(t *testing.T) {
	g := NewGrid(testRows, 1)
	agent := NewAgent(g, func() common.Vec3 { return g.Center(Cell{Col: 1, Row: 1}) })
	agent.SetDestination(g.Center(Cell{Col: 0, Row: 0}))

	_, ok := agent.NextWaypoint()
	assert.False(t, ok)

	var nilAgent *Agent
	nilAgent.SetDestination(common.Vec3{})
	_, ok = nilAgent.NextWaypoint()
	assert.False(t, ok)
}
