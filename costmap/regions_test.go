package costmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnav/costmap"
)

func TestGrid_Regions(t *testing.T) {
	// Column 2 is a wall splitting the grid in two.
	g, err := costmap.NewGrid([][]uint8{
		{0, 0, 127, 0, 127},
		{0, 0, 127, 127, 0},
		{0, 0, 127, 0, 0},
	})
	require.NoError(t, err)

	regions := g.Regions(100)
	require.Len(t, regions, 2)
	assert.Equal(t, []uint32{0, 1, 5, 6, 10, 11}, regions[0].ToArray())
	// (3,0) touches (4,1) diagonally, which links it to the lower-right block.
	assert.Equal(t, []uint32{3, 9, 13, 14}, regions[1].ToArray())

	// Raising the limit to MaxCost merges everything.
	all := g.Regions(costmap.MaxCost)
	require.Len(t, all, 1)
	assert.EqualValues(t, g.Size(), all[0].GetCardinality())
}

func TestGrid_Reachable(t *testing.T) {
	g, err := costmap.NewGrid([][]uint8{
		{0, 127, 0},
		{0, 127, 0},
	})
	require.NoError(t, err)

	left := g.Reachable(costmap.Pose{X: 0, Y: 0}, 100)
	assert.Equal(t, []uint32{0, 3}, left.ToArray())

	idx, ok := g.Index(costmap.Pose{X: 2, Y: 1})
	require.True(t, ok)
	assert.False(t, left.Contains(uint32(idx)))

	assert.True(t, g.Reachable(costmap.Pose{X: 1, Y: 0}, 100).IsEmpty(), "blocked start")
	assert.True(t, g.Reachable(costmap.Pose{X: 9, Y: 9}, 100).IsEmpty(), "outside")
}
