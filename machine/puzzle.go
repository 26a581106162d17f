// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"github.com/ezrec/utis100/cpu"
	"github.com/ezrec/utis100/fabric"
	"github.com/ezrec/utis100/spec"
)

// Output is one named output stream under validation.
type Output struct {
	Name string
	Node *fabric.OutputNode
}

// Puzzle is a machine built from a puzzle definition, validating the
// grid's output streams against their expected sequences.
type Puzzle struct {
	*Machine

	outputs []Output
}

// FromSpec builds the puzzle grid from a definition and a save. Compute
// tiles run the save program of their node number; memory tiles become
// stack nodes; damaged tiles are left vacant. Node numbers count row-major
// over all tiles, damaged ones included.
func FromSpec(sp *spec.Spec, save cpu.Save) (p *Puzzle, err error) {
	if len(sp.Layout) != sp.Cols*sp.Rows {
		return nil, ErrLayout
	}

	p = &Puzzle{Machine: New()}

	for n, tile := range sp.Layout {
		pos := fabric.Pos{X: n % sp.Cols, Y: n / sp.Cols}
		switch tile {
		case spec.TILE_COMPUTE:
			p.Add(pos, cpu.NewNode(save[n]))
		case spec.TILE_MEMORY:
			p.Add(pos, &fabric.StackNode{})
		}
	}

	for _, st := range sp.Streams {
		if st.Col < 0 || st.Col >= sp.Cols {
			return nil, ErrStream
		}
		switch st.Kind {
		case spec.STREAM_INPUT:
			in := &fabric.InputNode{Data: st.Data, Out: fabric.DIR_DOWN}
			p.Attach(fabric.Pos{X: st.Col, Y: -1}, in)
		case spec.STREAM_OUTPUT:
			out := &fabric.OutputNode{Expected: st.Data, In: fabric.DIR_UP}
			p.Attach(fabric.Pos{X: st.Col, Y: sp.Rows}, out)
			p.outputs = append(p.outputs, Output{Name: st.Name, Node: out})
		}
	}

	return p, nil
}

// Outputs returns the named output streams under validation.
func (p *Puzzle) Outputs() []Output {
	return p.outputs
}

// State aggregates the output streams: failed if any stream failed, passed
// once every stream has received its full expected sequence.
func (p *Puzzle) State() (state fabric.TestState) {
	state = fabric.TEST_PASSED
	for _, out := range p.outputs {
		switch out.Node.State() {
		case fabric.TEST_FAILED:
			return fabric.TEST_FAILED
		case fabric.TEST_TESTING:
			state = fabric.TEST_TESTING
		}
	}

	return
}

// Run steps the puzzle until it passes, fails, stalls, or exhausts the
// cycle budget. Returns the final validation state.
func (p *Puzzle) Run(budget int) (state fabric.TestState) {
	for p.Cycle() < budget {
		if state = p.State(); state != fabric.TEST_TESTING {
			return
		}
		p.Step()
		if p.Stalled() {
			break
		}
	}

	return p.State()
}
