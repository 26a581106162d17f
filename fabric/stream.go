package fabric

import (
	"fmt"
)

// TestState is the validation state of an output stream node.
type TestState int

//go:generate go tool stringer -linecomment -type=TestState
const (
	TEST_TESTING = TestState(0) // testing
	TEST_PASSED  = TestState(1) // passed
	TEST_FAILED  = TestState(2) // failed
)

// InputNode emits a pre-supplied sequence of values, one rendezvous at a
// time, on its fixed output side. An exhausted input never satisfies another
// read; the console variant may be refilled with Feed.
type InputNode struct {
	Data []int
	Out  Dir // Side the stream emits on.

	cursor  int
	faulted bool
	advance bool
}

var _ Node = (*InputNode)(nil)

func (in *InputNode) Plan(b *Bus, at Pos) {
	if in.faulted || in.cursor >= len(in.Data) {
		return
	}

	b.OfferWrite(Port{at, in.Out}, in.Data[in.cursor])
}

func (in *InputNode) Take(d Dir, value int) (err error) {
	// Input streams declare no reads.
	return
}

func (in *InputNode) Gave(d Dir) {
	in.advance = true
}

func (in *InputNode) Commit() (changed bool) {
	if in.advance {
		in.cursor++
		in.advance = false
		changed = true
	}

	return
}

func (in *InputNode) Halt() {
	in.faulted = true
	in.advance = false
}

// Feed appends a value to the stream. Used by the sandbox console.
func (in *InputNode) Feed(value int) {
	in.Data = append(in.Data, value)
}

// Done reports whether every supplied value has been consumed.
func (in *InputNode) Done() bool {
	return in.cursor >= len(in.Data)
}

func (in *InputNode) String() string {
	return fmt.Sprintf("input: %v/%v", in.cursor, len(in.Data))
}

// OutputNode records every value received on its fixed input side in an
// append-only log. With an Expected sequence set, the log is compared
// incrementally for puzzle validation; without one, it acts as a console
// drained with Pop.
type OutputNode struct {
	Expected []int
	In       Dir // Side the stream reads on.

	Received []int

	taken     []int
	faulted   bool
	readIndex int
}

var _ Node = (*OutputNode)(nil)

func (out *OutputNode) Plan(b *Bus, at Pos) {
	if out.faulted {
		return
	}

	b.WantRead(Port{at, out.In})
}

func (out *OutputNode) Take(d Dir, value int) (err error) {
	out.taken = append(out.taken, value)
	return
}

func (out *OutputNode) Gave(d Dir) {
	// Output streams declare no writes.
}

func (out *OutputNode) Commit() (changed bool) {
	changed = len(out.taken) > 0

	out.Received = append(out.Received, out.taken...)
	out.taken = out.taken[:0]

	return
}

func (out *OutputNode) Halt() {
	out.faulted = true
	out.taken = out.taken[:0]
}

// State compares the received log against the expected sequence.
func (out *OutputNode) State() TestState {
	for n, value := range out.Received {
		if n >= len(out.Expected) || out.Expected[n] != value {
			return TEST_FAILED
		}
	}

	if len(out.Received) == len(out.Expected) {
		return TEST_PASSED
	}

	return TEST_TESTING
}

// Pop returns the next value appended since the previous Pop. Used by the
// sandbox console.
func (out *OutputNode) Pop() (value int, ok bool) {
	if out.readIndex >= len(out.Received) {
		return
	}

	value = out.Received[out.readIndex]
	out.readIndex++
	ok = true
	return
}

func (out *OutputNode) String() string {
	return fmt.Sprintf("output: %v", out.Received)
}
