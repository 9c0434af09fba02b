package costmap_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnav/costmap"
)

const sampleMap = `# 4x3 corridor
0 0 0 0
0 127 127 0   # wall
0 0 0 0
`

func TestLoad_Text(t *testing.T) {
	g, err := costmap.Load(strings.NewReader(sampleMap), costmap.WithOrigin(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, costmap.MaxCost, g.Cost(costmap.Pose{X: 2, Y: 2}))
	assert.Equal(t, uint8(0), g.Cost(costmap.Pose{X: 1, Y: 1}))
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name, in string
		err      error
	}{
		{"Empty", "# nothing\n\n", costmap.ErrEmptyGrid},
		{"BadToken", "0 x 0\n", costmap.ErrParse},
		{"Negative", "0 -1\n", costmap.ErrCostRange},
		{"TooLarge", "0 300\n", costmap.ErrCostRange},
		{"Ragged", "0 0\n0\n", costmap.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costmap.Load(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCodecFor(t *testing.T) {
	assert.Equal(t, costmap.CodecGzip, costmap.CodecFor("a/map.txt.gz"))
	assert.Equal(t, costmap.CodecZstd, costmap.CodecFor("map.ZST"))
	assert.Equal(t, costmap.CodecLZ4, costmap.CodecFor("map.lz4"))
	assert.Equal(t, costmap.CodecNone, costmap.CodecFor("map.txt"))
}

func TestWriteTo_RoundTrip(t *testing.T) {
	g, err := costmap.Load(strings.NewReader(sampleMap))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, strings.HasPrefix(buf.String(), "# costmap 4x3"))

	back, err := costmap.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Poses(), back.Poses())
	for _, p := range g.Poses() {
		assert.Equal(t, g.Cost(p), back.Cost(p))
	}
}

func TestSaveFile_LoadFile_AllCodecs(t *testing.T) {
	g, err := costmap.Load(strings.NewReader(sampleMap), costmap.WithResolution(0.05))
	require.NoError(t, err)
	dir := t.TempDir()

	for _, name := range []string{"map.txt", "map.txt.gz", "map.txt.zst", "map.txt.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, g.SaveFile(path))

			back, err := costmap.LoadFile(path, costmap.WithResolution(0.05))
			require.NoError(t, err)
			assert.Equal(t, g.Width(), back.Width())
			assert.Equal(t, g.Height(), back.Height())
			for _, p := range g.Poses() {
				assert.Equal(t, g.Cost(p), back.Cost(p), "pose %s", p)
			}
		})
	}
}

func TestLoad_Header(t *testing.T) {
	g, err := costmap.Load(strings.NewReader(sampleMap), costmap.WithOrigin(-2, 3), costmap.WithResolution(0.05))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "map.txt.zst")
	require.NoError(t, g.SaveFile(path))

	// The header alone restores origin and resolution.
	back, err := costmap.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, costmap.Pose{X: -2, Y: 3}, back.Origin())
	assert.Equal(t, 0.05, back.Resolution())
	assert.Equal(t, g.Poses(), back.Poses())

	// Options still win over the header.
	back, err = costmap.LoadFile(path, costmap.WithResolution(0.1))
	require.NoError(t, err)
	assert.Equal(t, 0.1, back.Resolution())
	assert.Equal(t, costmap.Pose{X: -2, Y: 3}, back.Origin())

	cases := []struct {
		name, in string
	}{
		{"SizeMismatch", "# costmap 3x1 origin 0,0 resolution 1\n0 0\n"},
		{"ZeroResolution", "# costmap 2x1 origin 0,0 resolution 0\n0 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costmap.Load(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, costmap.ErrParse)
		})
	}

	// A header after the first row is an ordinary comment.
	late, err := costmap.Load(strings.NewReader("0 0\n# costmap 9x9 origin 5,5 resolution 2\n"))
	require.NoError(t, err)
	assert.Equal(t, costmap.Pose{}, late.Origin())
	assert.Equal(t, 1.0, late.Resolution())
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := costmap.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Plain text under a .gz name is not a gzip stream.
	path := filepath.Join(t.TempDir(), "fake.gz")
	require.NoError(t, os.WriteFile(path, []byte(sampleMap), 0o600))
	_, err = costmap.LoadFile(path)
	assert.Error(t, err)
}
