package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/utis100/cpu"
	"github.com/ezrec/utis100/fabric"
	"github.com/ezrec/utis100/spec"
)

const doublerScript = `
def get_size():
    return (1, 1)

def get_layout():
    return [TILE_COMPUTE]

def get_streams():
    return [
        (STREAM_INPUT, "IN.A", 0, [1, 2, 3]),
        (STREAM_OUTPUT, "OUT.A", 0, [2, 4, 6]),
    ]
`

func parseSpec(t *testing.T, script string) (sp *spec.Spec) {
	sp, err := spec.Parse("test.star", script)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestPuzzlePassed(t *testing.T) {
	assert := assert.New(t)

	p, err := FromSpec(parseSpec(t, doublerScript), parseSave(t,
		"@0",
		"MOV UP ACC",
		"ADD ACC",
		"MOV ACC DOWN",
	))
	assert.NoError(err)

	state := p.Run(1000)
	assert.Equal(fabric.TEST_PASSED, state)

	outputs := p.Outputs()
	assert.Len(outputs, 1)
	assert.Equal("OUT.A", outputs[0].Name)
	assert.Equal([]int{2, 4, 6}, outputs[0].Node.Received)
}

func TestPuzzleFailed(t *testing.T) {
	assert := assert.New(t)

	p, err := FromSpec(parseSpec(t, doublerScript), parseSave(t,
		"@0",
		"MOV UP DOWN",
	))
	assert.NoError(err)

	assert.Equal(fabric.TEST_FAILED, p.Run(1000))
}

func TestPuzzleStalled(t *testing.T) {
	assert := assert.New(t)

	// An empty save deadlocks; validation neither passes nor fails.
	p, err := FromSpec(parseSpec(t, doublerScript), cpu.Save{})
	assert.NoError(err)

	assert.Equal(fabric.TEST_TESTING, p.Run(1000))
	assert.Less(p.Cycle(), 1000)
}

func TestPuzzleBudget(t *testing.T) {
	assert := assert.New(t)

	// An oscillating node never stalls; the cycle budget bounds the run.
	p, err := FromSpec(parseSpec(t, doublerScript), parseSave(t,
		"@0",
		"ADD 1",
		"SUB 1",
	))
	assert.NoError(err)

	assert.Equal(fabric.TEST_TESTING, p.Run(50))
	assert.Equal(50, p.Cycle())
}

const memoryScript = `
def get_size():
    return (2, 1)

def get_layout():
    return [TILE_COMPUTE, TILE_MEMORY]

def get_streams():
    return [
        (STREAM_INPUT, "IN.A", 0, [4, 5]),
        (STREAM_OUTPUT, "OUT.A", 0, [5, 4]),
    ]
`

func TestPuzzleMemoryTile(t *testing.T) {
	assert := assert.New(t)

	// Buffer two values through the stack to reverse them.
	p, err := FromSpec(parseSpec(t, memoryScript), parseSave(t,
		"@0",
		"MOV UP RIGHT",
		"MOV UP RIGHT",
		"MOV RIGHT DOWN",
		"MOV RIGHT DOWN",
		"JRO 0",
	))
	assert.NoError(err)

	assert.Equal(fabric.TEST_PASSED, p.Run(1000))
}

func TestPuzzleDamagedTile(t *testing.T) {
	assert := assert.New(t)

	script := `
def get_size():
    return (2, 1)

def get_layout():
    return [TILE_COMPUTE, TILE_DAMAGED]

def get_streams():
    return []
`
	p, err := FromSpec(parseSpec(t, script), cpu.Save{})
	assert.NoError(err)

	// A damaged tile is vacant; a read toward it blocks forever.
	assert.Nil(p.Node(fabric.Pos{X: 1, Y: 0}))
	assert.NotNil(p.Node(fabric.Pos{X: 0, Y: 0}))
}

func TestPuzzleErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := FromSpec(&spec.Spec{Cols: 2, Rows: 1, Layout: []spec.Tile{spec.TILE_COMPUTE}}, cpu.Save{})
	assert.ErrorIs(err, ErrLayout)

	sp := parseSpec(t, doublerScript)
	sp.Streams[0].Col = 5
	_, err = FromSpec(sp, cpu.Save{})
	assert.ErrorIs(err, ErrStream)
}
