package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const script = `
def get_layout():
    layout = [TILE_COMPUTE] * 12
    layout[5] = TILE_MEMORY
    layout[6] = TILE_DAMAGED
    return layout

def get_streams():
    return [
        (STREAM_INPUT, "IN.A", 0, [x * 2 for x in range(4)]),
        (STREAM_OUTPUT, "OUT.A", 3, [0, 2, 4, 6]),
    ]
`

func TestSpecParse(t *testing.T) {
	assert := assert.New(t)

	sp, err := Parse("script.star", script)
	assert.NoError(err)

	assert.Equal(DEFAULT_COLS, sp.Cols)
	assert.Equal(DEFAULT_ROWS, sp.Rows)
	assert.Equal(TILE_MEMORY, sp.Tile(1, 1))
	assert.Equal(TILE_DAMAGED, sp.Tile(2, 1))
	assert.Equal(TILE_COMPUTE, sp.Tile(0, 0))

	assert.Equal([]Stream{
		{Kind: STREAM_INPUT, Name: "IN.A", Col: 0, Data: []int{0, 2, 4, 6}},
		{Kind: STREAM_OUTPUT, Name: "OUT.A", Col: 3, Data: []int{0, 2, 4, 6}},
	}, sp.Streams)
}

func TestSpecSize(t *testing.T) {
	assert := assert.New(t)

	sp, err := Parse("script.star", `
def get_size():
    return (2, 2)

def get_layout():
    return [TILE_COMPUTE] * 4

def get_streams():
    return []
`)
	assert.NoError(err)
	assert.Equal(2, sp.Cols)
	assert.Equal(2, sp.Rows)
	assert.Empty(sp.Streams)
}

func TestSpecLoad(t *testing.T) {
	assert := assert.New(t)

	filename := filepath.Join(t.TempDir(), "puzzle.star")
	err := os.WriteFile(filename, []byte(script), 0o644)
	assert.NoError(err)

	sp, err := Load(filename)
	assert.NoError(err)
	assert.Equal(DEFAULT_COLS*DEFAULT_ROWS, len(sp.Layout))

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"))
	assert.Error(err)
}

func TestSpecErrors(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		name   string
		script string
		target error
	}{
		{"short layout", `
def get_layout():
    return [TILE_COMPUTE]

def get_streams():
    return []
`, ErrLayout},
		{"bad tile", `
def get_layout():
    return [99] * 12

def get_streams():
    return []
`, ErrTile},
		{"no layout", `
def get_streams():
    return []
`, ErrNotFunction},
		{"bad stream kind", `
def get_layout():
    return [TILE_COMPUTE] * 12

def get_streams():
    return [(7, "IN.A", 0, [])]
`, ErrStreamKind},
		{"bad stream shape", `
def get_layout():
    return [TILE_COMPUTE] * 12

def get_streams():
    return [(STREAM_INPUT, "IN.A", 0)]
`, ErrExpectTuple},
	} {
		_, err := Parse(tc.name, tc.script)
		assert.ErrorIs(err, tc.target, tc.name)

		var se ErrScript
		assert.ErrorAs(err, &se, tc.name)
	}

	// A script error surfaces as-is.
	_, err := Parse("boom.star", `fail("nope")`)
	assert.Error(err)
}
