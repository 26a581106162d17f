// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"

	"github.com/ezrec/utis100/fabric"
)

//go:generate go tool stringer -linecomment -type=State
type State int

const (
	STATE_RUN   State = iota // run
	STATE_READ               // read
	STATE_WRITE              // write
	STATE_FAULT              // fault
)

// regs is the complete architectural state of a compute node. It is a plain
// comparable value so that a tick can stage a successor and commit it
// atomically.
type regs struct {
	pc     int
	acc    int
	bak    int
	state  State
	wait   Operand    // port operand being waited on in READ or WRITE
	write  int        // value pending in WRITE
	last   fabric.Dir // direction resolved by the most recent ANY
	sawAny bool
}

// Node is one compute node of the grid. It executes its program one
// instruction per tick, rendezvousing with its neighbors through the port
// fabric. All effects of a tick are staged and applied in Commit.
type Node struct {
	Verbose bool

	prog   *Program
	regs   regs
	staged *regs
}

// NewNode creates a compute node running prog. A nil or empty program
// leaves the node permanently idle.
func NewNode(prog *Program) (n *Node) {
	return &Node{prog: prog}
}

func (n *Node) Acc() int          { return n.regs.acc }
func (n *Node) Bak() int          { return n.regs.bak }
func (n *Node) PC() int           { return n.regs.pc }
func (n *Node) State() State      { return n.regs.state }
func (n *Node) Program() *Program { return n.prog }

// Last reports the direction chosen by the most recent ANY rendezvous.
func (n *Node) Last() (d fabric.Dir, ok bool) {
	return n.regs.last, n.regs.sawAny
}

func (n *Node) String() string {
	return fmt.Sprintf("acc:%v bak:%v pc:%v %v", n.regs.acc, n.regs.bak, n.regs.pc, n.regs.state)
}

// stage returns the tick's successor state, creating it from the current
// registers on first use.
func (n *Node) stage() *regs {
	if n.staged == nil {
		r := n.regs
		n.staged = &r
	}
	return n.staged
}

func (n *Node) nextPC(pc int) int {
	return (pc + 1) % n.prog.Len()
}

// clampPC bounds a JRO target to the program, without wrapping.
func (n *Node) clampPC(pc int) int {
	if pc < 0 {
		return 0
	}
	if pc >= n.prog.Len() {
		return n.prog.Len() - 1
	}
	return pc
}

// Plan begins or continues the instruction at the program counter,
// declaring any port intents for this tick.
func (n *Node) Plan(b *fabric.Bus, at fabric.Pos) {
	if n.prog == nil || n.prog.Len() == 0 {
		return
	}

	switch n.regs.state {
	case STATE_FAULT:
		return
	case STATE_READ:
		n.declareRead(b, at, n.regs.wait)
		return
	case STATE_WRITE:
		n.declareWrite(b, at, n.regs.wait, n.regs.write)
		return
	}

	in := n.prog.At(n.regs.pc)
	if n.Verbose {
		log.Printf("%v: %v: %v\n", at, n.regs.pc, in)
	}
	n.begin(in, b, at)
}

// begin starts executing one instruction. Register-only instructions stage
// their full effect; port instructions stage a wait state and declare the
// intent on the bus.
func (n *Node) begin(in Instruction, b *fabric.Bus, at fabric.Pos) {
	st := n.stage()

	switch in.Op {
	case OP_HCF, OP_PUSH, OP_POP:
		// PUSH and POP only have meaning on a memory node.
		st.state = STATE_FAULT
		return
	case OP_JMP, OP_JEZ, OP_JNZ, OP_JGZ, OP_JLZ:
		st.pc = n.jumpPC(in)
		return
	case OP_NOP:
		st.pc = n.nextPC(st.pc)
		return
	case OP_SWP:
		st.acc, st.bak = st.bak, st.acc
		st.pc = n.nextPC(st.pc)
		return
	case OP_SAV:
		st.bak = st.acc
		st.pc = n.nextPC(st.pc)
		return
	case OP_NEG:
		st.acc = -st.acc
		st.pc = n.nextPC(st.pc)
		return
	}

	// MOV, ADD, SUB, JRO: a source value is needed first.
	if in.Src.IsPort() {
		if in.Src == OPERAND_LAST && !st.sawAny {
			// An unset LAST reads as an immediate zero.
			n.finish(in, 0, b, at)
			return
		}
		st.state = STATE_READ
		st.wait = in.Src
		n.declareRead(b, at, in.Src)
		return
	}
	n.finish(in, n.sourceValue(in), b, at)
}

// sourceValue evaluates a non-port source operand.
func (n *Node) sourceValue(in Instruction) int {
	switch in.Src {
	case OPERAND_ACC:
		return n.regs.acc
	case OPERAND_LIT:
		return in.Lit
	}
	return 0 // NIL
}

// jumpPC evaluates a conditional jump against ACC.
func (n *Node) jumpPC(in Instruction) int {
	acc := n.stage().acc
	taken := false
	switch in.Op {
	case OP_JMP:
		taken = true
	case OP_JEZ:
		taken = acc == 0
	case OP_JNZ:
		taken = acc != 0
	case OP_JGZ:
		taken = acc > 0
	case OP_JLZ:
		taken = acc < 0
	}
	if taken {
		return in.Target
	}
	return n.nextPC(n.stage().pc)
}

// finish applies an instruction once its source value is known. A MOV to a
// port stages a write; with a live bus the offer is declared immediately,
// while a read completing mid-resolution (b == nil) offers on the next
// tick, so a value never crosses more than one edge per tick.
func (n *Node) finish(in Instruction, value int, b *fabric.Bus, at fabric.Pos) {
	st := n.stage()

	switch in.Op {
	case OP_MOV:
		switch in.Dst {
		case OPERAND_ACC:
			st.acc = Clamp(value)
		case OPERAND_NIL:
			// Discard.
		default:
			st.state = STATE_WRITE
			st.wait = in.Dst
			st.write = Clamp(value)
			if b != nil {
				n.declareWrite(b, at, in.Dst, st.write)
			}
			return
		}
	case OP_ADD:
		st.acc = Clamp(st.acc + value)
	case OP_SUB:
		st.acc = Clamp(st.acc - value)
	case OP_JRO:
		st.state = STATE_RUN
		st.pc = n.clampPC(st.pc + value)
		return
	}
	st.state = STATE_RUN
	st.pc = n.nextPC(st.pc)
}

// declareRead registers this node's read intent on the bus.
func (n *Node) declareRead(b *fabric.Bus, at fabric.Pos, wait Operand) {
	switch wait {
	case OPERAND_ANY:
		b.WantReadShared(at, fabric.Around[:]...)
	case OPERAND_LAST:
		b.WantRead(fabric.Port{Pos: at, Dir: n.regs.last})
	default:
		d, ok := wait.Dir()
		if ok {
			b.WantRead(fabric.Port{Pos: at, Dir: d})
		}
	}
}

// declareWrite registers this node's write offer on the bus. A write
// through a never-set LAST declares nothing and blocks forever.
func (n *Node) declareWrite(b *fabric.Bus, at fabric.Pos, wait Operand, value int) {
	switch wait {
	case OPERAND_ANY:
		b.OfferWriteShared(at, value, fabric.Around[:]...)
	case OPERAND_LAST:
		if n.regs.sawAny {
			b.OfferWrite(fabric.Port{Pos: at, Dir: n.regs.last}, value)
		}
	default:
		d, ok := wait.Dir()
		if ok {
			b.OfferWrite(fabric.Port{Pos: at, Dir: d}, value)
		}
	}
}

// Take stages delivery of a value read on side d, completing the pending
// instruction. The write half of a MOV between ports is offered on the
// next tick.
func (n *Node) Take(d fabric.Dir, value int) (err error) {
	st := n.stage()
	if st.wait == OPERAND_ANY {
		st.last = d
		st.sawAny = true
	}
	st.state = STATE_RUN
	st.wait = OPERAND_NONE
	n.finish(n.prog.At(n.regs.pc), value, nil, fabric.Pos{})

	return
}

// Gave stages completion of the pending write, consumed on side d.
func (n *Node) Gave(d fabric.Dir) {
	st := n.stage()
	if st.wait == OPERAND_ANY {
		st.last = d
		st.sawAny = true
	}
	st.state = STATE_RUN
	st.wait = OPERAND_NONE
	st.write = 0
	st.pc = n.nextPC(st.pc)
}

// Commit applies the staged successor state.
func (n *Node) Commit() (changed bool) {
	if n.staged == nil {
		return false
	}
	changed = *n.staged != n.regs
	n.regs = *n.staged
	n.staged = nil

	return
}

// Halt forces the node into its terminal fault state.
func (n *Node) Halt() {
	n.regs.state = STATE_FAULT
	n.staged = nil
}
