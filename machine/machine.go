// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"iter"
	"log"
	"slices"

	"github.com/ezrec/utis100/fabric"
	"github.com/ezrec/utis100/internal"
)

// Machine is a grid of nodes stepped in lock step through a shared port
// fabric.
type Machine struct {
	Verbose bool

	// HaltStackOnOverflow also faults a memory node whose capacity was
	// exceeded, in addition to the writer.
	HaltStackOnOverflow bool

	tiles map[fabric.Pos]fabric.Node // grid occupants
	edges map[fabric.Pos]fabric.Node // stream adapters outside the grid
	order []fabric.Pos               // all positions, row-major

	bus     *fabric.Bus
	cycle   int
	stalled bool
}

func New() (m *Machine) {
	return &Machine{
		tiles: map[fabric.Pos]fabric.Node{},
		edges: map[fabric.Pos]fabric.Node{},
		bus:   fabric.NewBus(),
	}
}

// Add places a node on the grid.
func (m *Machine) Add(pos fabric.Pos, n fabric.Node) {
	m.tiles[pos] = n
	m.reorder()
}

// Attach places a stream adapter on a position just outside the grid.
func (m *Machine) Attach(pos fabric.Pos, n fabric.Node) {
	m.edges[pos] = n
	m.reorder()
}

func (m *Machine) reorder() {
	m.order = m.order[:0]
	for pos := range m.tiles {
		m.order = append(m.order, pos)
	}
	for pos := range m.edges {
		m.order = append(m.order, pos)
	}
	slices.SortFunc(m.order, func(p, q fabric.Pos) int {
		if p == q {
			return 0
		}
		if p.Less(q) {
			return -1
		}
		return 1
	})
}

// Node returns the occupant of a position, grid or edge.
func (m *Machine) Node(pos fabric.Pos) (n fabric.Node) {
	n, ok := m.tiles[pos]
	if !ok {
		n = m.edges[pos]
	}
	return
}

func sorted(nodes map[fabric.Pos]fabric.Node, order []fabric.Pos) iter.Seq2[fabric.Pos, fabric.Node] {
	return func(yield func(fabric.Pos, fabric.Node) bool) {
		for _, pos := range order {
			n, ok := nodes[pos]
			if !ok {
				continue
			}
			if !yield(pos, n) {
				return
			}
		}
	}
}

// All iterates every node in canonical order, grid tiles before edge
// adapters.
func (m *Machine) All() iter.Seq2[fabric.Pos, fabric.Node] {
	return internal.IterSeq2Concat(
		sorted(m.tiles, m.order),
		sorted(m.edges, m.order),
	)
}

// Snapshot formats the occupant of a position for inspection.
func (m *Machine) Snapshot(pos fabric.Pos) (text string) {
	n := m.Node(pos)
	if n == nil {
		return
	}
	return n.String()
}

// Cycle returns the number of completed ticks.
func (m *Machine) Cycle() int {
	return m.cycle
}

// Stalled reports whether the previous tick made no progress: no transfer
// resolved and no node changed state. A stalled machine stays stalled
// unless new input arrives.
func (m *Machine) Stalled() bool {
	return m.stalled
}

// Step runs one tick: gather every node's intents, resolve the rendezvous,
// deliver the transfers, and commit all staged state.
func (m *Machine) Step() {
	m.bus.Reset()
	for _, pos := range m.order {
		m.Node(pos).Plan(m.bus, pos)
	}

	transfers := m.bus.Resolve(m.order)

	for _, t := range transfers {
		reader := m.Node(t.To.Pos)
		writer := m.Node(t.From.Pos)

		err := reader.Take(t.To.Dir, t.Value)
		if err != nil {
			if m.Verbose {
				log.Printf("%v: %v -> %v: %v\n", m.cycle, t.From.Pos, t.To.Pos, err)
			}
			writer.Halt()
			if m.HaltStackOnOverflow {
				reader.Halt()
			}
			continue
		}
		writer.Gave(t.From.Dir)

		if m.Verbose {
			log.Printf("%v: %v -> %v: %v\n", m.cycle, t.From.Pos, t.To.Pos, t.Value)
		}
	}

	progress := len(transfers) > 0
	for _, pos := range m.order {
		if m.Node(pos).Commit() {
			progress = true
		}
	}

	m.cycle += 1
	m.stalled = !progress
}

// Run steps the machine until it stalls or the cycle budget is exhausted.
// Returns the number of ticks executed.
func (m *Machine) Run(budget int) (ticks int) {
	for ticks = 0; ticks < budget; ticks++ {
		m.Step()
		if m.stalled {
			break
		}
	}

	return
}
