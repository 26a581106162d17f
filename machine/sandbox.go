package machine

import (
	"github.com/ezrec/utis100/cpu"
	"github.com/ezrec/utis100/fabric"
)

// Sandbox grid size and console hookup. The console feeds values down into
// the top of column 1 and collects values falling out of the bottom of
// column 2.
const (
	SANDBOX_COLS = 4
	SANDBOX_ROWS = 3
)

var (
	sandboxIn  = fabric.Pos{X: 1, Y: -1}
	sandboxOut = fabric.Pos{X: 2, Y: SANDBOX_ROWS}
)

// Sandbox is a free-running machine with a numeric console attached.
type Sandbox struct {
	*Machine

	in  *fabric.InputNode
	out *fabric.OutputNode
}

// NewSandbox builds the sandbox grid from a save. Nodes are numbered
// row-major from zero; nodes absent from the save idle.
func NewSandbox(save cpu.Save) (sb *Sandbox) {
	sb = &Sandbox{
		Machine: New(),
		in:      &fabric.InputNode{Out: fabric.DIR_DOWN},
		out:     &fabric.OutputNode{In: fabric.DIR_UP},
	}

	for n := 0; n < SANDBOX_COLS*SANDBOX_ROWS; n++ {
		pos := fabric.Pos{X: n % SANDBOX_COLS, Y: n / SANDBOX_COLS}
		sb.Add(pos, cpu.NewNode(save[n]))
	}
	sb.Attach(sandboxIn, sb.in)
	sb.Attach(sandboxOut, sb.out)

	return
}

// WriteConsole queues a value for the grid to read on the console input.
func (sb *Sandbox) WriteConsole(value int) {
	sb.in.Feed(cpu.Clamp(value))
}

// ReadConsole drains the next value the grid wrote to the console output.
func (sb *Sandbox) ReadConsole() (value int, ok bool) {
	return sb.out.Pop()
}
