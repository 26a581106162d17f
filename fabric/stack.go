package fabric

import (
	"fmt"
)

const (
	STACK_LIMIT = 15 // Maximum stack node depth
)

// StackNode is a memory node with no program of its own. Each tick it offers
// its top value on every side (a pop, consumed by at most one neighbor) and
// accepts a value from every side (pushes, in fixed side order). A push at
// capacity is refused with ErrStackFull and faults the sender.
type StackNode struct {
	Data []int

	faulted bool
	pushes  []int
	popped  bool
}

var _ Node = (*StackNode)(nil)

func (s *StackNode) Plan(b *Bus, at Pos) {
	if s.faulted {
		return
	}

	if len(s.Data) > 0 {
		b.OfferWriteShared(at, s.Data[len(s.Data)-1], Around[:]...)
	}
	for _, d := range Around {
		b.WantRead(Port{at, d})
	}
}

func (s *StackNode) Take(d Dir, value int) (err error) {
	depth := len(s.Data) + len(s.pushes)
	if s.popped {
		depth--
	}
	if depth >= STACK_LIMIT {
		err = ErrStackFull
		return
	}

	s.pushes = append(s.pushes, value)
	return
}

func (s *StackNode) Gave(d Dir) {
	s.popped = true
}

func (s *StackNode) Commit() (changed bool) {
	changed = s.popped || len(s.pushes) > 0

	if s.popped {
		s.Data = s.Data[:len(s.Data)-1]
		s.popped = false
	}
	s.Data = append(s.Data, s.pushes...)
	s.pushes = s.pushes[:0]

	return
}

func (s *StackNode) Halt() {
	s.faulted = true
	s.pushes = s.pushes[:0]
	s.popped = false
}

// Faulted reports whether the node has entered its terminal fault state.
func (s *StackNode) Faulted() bool {
	return s.faulted
}

// Peek returns the top of the stack.
func (s *StackNode) Peek() (value int, ok bool) {
	if len(s.Data) == 0 {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// String returns the current stack contents as a string.
func (s *StackNode) String() (text string) {
	text = fmt.Sprintf("stack[%v]: %v", len(s.Data), s.Data)
	if s.faulted {
		text += " (fault)"
	}

	return
}
