package fabric

import (
	"fmt"
)

// Node is the uniform tick contract implemented by every grid occupant:
// compute nodes, stack memory nodes, and stream adapters alike.
//
// A tick runs in three phases. Plan declares the node's intents on the bus
// (or stages work that needs no port). Take and Gave stage the effects of
// resolved transfers: Take delivers a value read on the given side, Gave
// reports that a pending write was consumed. Commit applies everything that
// was staged and reports whether the node's state changed.
type Node interface {
	fmt.Stringer

	// Plan declares the node's intents for this tick.
	Plan(b *Bus, at Pos)
	// Take stages a value delivered on the given side. A non-nil error
	// refuses the transfer; the scheduler faults the sender.
	Take(d Dir, value int) error
	// Gave stages completion of a pending write consumed on the given side.
	Gave(d Dir)
	// Commit applies staged state. Returns true if anything changed.
	Commit() bool
	// Halt forces the node into its terminal fault state.
	Halt()
}
