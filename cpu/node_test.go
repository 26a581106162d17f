package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/utis100/fabric"
)

func parseProgram(t *testing.T, lines ...string) (prog *Program) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return
}

// tick steps a lone node; its port intents never resolve.
func tick(n *Node, ticks int) {
	at := fabric.Pos{X: 0, Y: 0}
	for range ticks {
		b := fabric.NewBus()
		n.Plan(b, at)
		b.Resolve([]fabric.Pos{at})
		n.Commit()
	}
}

func TestNodeSaturation(t *testing.T) {
	assert := assert.New(t)

	n := NewNode(parseProgram(t,
		"ADD 995",
		"ADD 10",
		"ADD 10",
	))

	tick(n, 1)
	assert.Equal(995, n.Acc())
	tick(n, 2)
	assert.Equal(999, n.Acc())

	n = NewNode(parseProgram(t, "SUB 999", "SUB 999"))
	tick(n, 2)
	assert.Equal(-999, n.Acc())
}

func TestNodeRegisters(t *testing.T) {
	assert := assert.New(t)

	n := NewNode(parseProgram(t,
		"ADD 5",
		"SAV",
		"NEG",
		"SWP",
	))

	tick(n, 3)
	assert.Equal(-5, n.Acc())
	assert.Equal(5, n.Bak())

	tick(n, 1)
	assert.Equal(5, n.Acc())
	assert.Equal(-5, n.Bak())
}

func TestNodeProgramWrap(t *testing.T) {
	assert := assert.New(t)

	n := NewNode(parseProgram(t, "ADD 1", "NOP"))

	tick(n, 4)
	assert.Equal(2, n.Acc())
	assert.Equal(0, n.PC())
}

func TestNodeJumps(t *testing.T) {
	assert := assert.New(t)

	n := NewNode(parseProgram(t,
		"ADD 3",
		"LOOP: SUB 1",
		"JNZ LOOP",
	))

	// 1 tick ADD, then 2 ticks per loop iteration.
	tick(n, 7)
	assert.Equal(0, n.Acc())
	assert.Equal(0, n.PC())
}

func TestNodeJroClamp(t *testing.T) {
	assert := assert.New(t)

	n := NewNode(parseProgram(t, "JRO -5", "ADD 1"))
	tick(n, 3)
	assert.Equal(0, n.Acc()) // stuck on the first instruction

	n = NewNode(parseProgram(t, "JRO 99", "ADD 1", "ADD 2"))
	tick(n, 2)
	assert.Equal(2, n.Acc()) // clamped to the last instruction
}

func TestNodeLastUnset(t *testing.T) {
	assert := assert.New(t)

	// Reading a never-set LAST yields zero without blocking.
	n := NewNode(parseProgram(t, "ADD 5", "MOV LAST ACC"))
	tick(n, 2)
	assert.Equal(0, n.Acc())
	assert.Equal(STATE_RUN, n.State())

	// Writing a never-set LAST blocks forever.
	n = NewNode(parseProgram(t, "MOV 1 LAST"))
	tick(n, 4)
	assert.Equal(STATE_WRITE, n.State())
}

func TestNodeFault(t *testing.T) {
	assert := assert.New(t)

	for _, source := range []string{"HCF", "PUSH ACC", "POP ACC"} {
		n := NewNode(parseProgram(t, source))
		tick(n, 3)
		assert.Equal(STATE_FAULT, n.State(), source)
	}
}

func TestNodeIdle(t *testing.T) {
	assert := assert.New(t)

	n := NewNode(nil)
	b := fabric.NewBus()
	n.Plan(b, fabric.Pos{})
	assert.False(n.Commit())
}

func TestNodeRendezvous(t *testing.T) {
	assert := assert.New(t)

	// Both halves of a matched transfer complete in the same tick.
	writer := NewNode(parseProgram(t, "ADD 7", "MOV ACC RIGHT"))
	reader := NewNode(parseProgram(t, "MOV LEFT ACC"))

	wat := fabric.Pos{X: 0, Y: 0}
	rat := fabric.Pos{X: 1, Y: 0}
	order := []fabric.Pos{wat, rat}

	for range 2 {
		b := fabric.NewBus()
		writer.Plan(b, wat)
		reader.Plan(b, rat)
		for _, tr := range b.Resolve(order) {
			assert.NoError(reader.Take(tr.To.Dir, tr.Value))
			writer.Gave(tr.From.Dir)
		}
		writer.Commit()
		reader.Commit()
	}

	assert.Equal(7, reader.Acc())
	assert.Equal(0, writer.PC()) // the MOV completed and wrapped
	assert.Equal(STATE_RUN, writer.State())
}
