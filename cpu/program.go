package cpu

import "iter"

// MAX_PROGRAM is the instruction capacity of a single node.
const MAX_PROGRAM = 15

// Program is an assembled node program with its resolved labels.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}

func (p *Program) Len() int {
	return len(p.Instructions)
}

// At returns the instruction at the (already wrapped) program counter.
func (p *Program) At(pc int) Instruction {
	return p.Instructions[pc]
}

// Codes iterates the program in execution order.
func (p *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(int, Instruction) bool) {
		for pc, in := range p.Instructions {
			if !yield(pc, in) {
				return
			}
		}
	}
}

// Save maps node numbers to their programs, as read from an @n save file.
// Nodes absent from the save run an empty program.
type Save map[int]*Program
