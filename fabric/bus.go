package fabric

// Transfer is one resolved rendezvous: the value moves from the writer's
// port to the reader's port on the opposite side of the same edge.
type Transfer struct {
	From  Port
	To    Port
	Value int
}

// group links the intents of one logical operation. A wildcard write is
// offered on several ports but may be consumed at most once; consuming any
// member takes the whole group.
type group struct {
	taken bool
}

type offer struct {
	value int
	wild  bool
	group *group
}

type want struct {
	wild  bool
	group *group
}

// Bus is the per-tick intent registry of the port fabric. Nodes declare
// write offers and read wants during the gather phase; Resolve matches them
// pairwise per edge. The bus holds no state across ticks: unmatched waiters
// simply re-declare the same intent on the next tick.
type Bus struct {
	offers map[Port]*offer
	wants  map[Port]*want
}

// NewBus creates an empty bus.
func NewBus() (b *Bus) {
	b = &Bus{}
	b.Reset()

	return
}

// Reset discards all declared intents.
func (b *Bus) Reset() {
	b.offers = make(map[Port]*offer)
	b.wants = make(map[Port]*want)
}

// OfferWrite declares a pending write of value on a single concrete port.
func (b *Bus) OfferWrite(at Port, value int) {
	b.offers[at] = &offer{value: value, group: &group{}}
}

// OfferWriteShared declares one pending write offered on several ports of
// the same node. At most one of the linked offers is consumed.
func (b *Bus) OfferWriteShared(pos Pos, value int, dirs ...Dir) {
	g := &group{}
	for _, d := range dirs {
		b.offers[Port{pos, d}] = &offer{value: value, wild: true, group: g}
	}
}

// WantRead declares a pending read on a single concrete port.
func (b *Bus) WantRead(at Port) {
	b.wants[at] = &want{group: &group{}}
}

// WantReadShared declares one pending read satisfiable on any of several
// ports of the same node. At most one of the linked wants is satisfied.
func (b *Bus) WantReadShared(pos Pos, dirs ...Dir) {
	g := &group{}
	for _, d := range dirs {
		b.wants[Port{pos, d}] = &want{wild: true, group: g}
	}
}

// Resolve matches all declared intents and returns the tick's transfers.
//
// Concrete pairs are matched first; their outcome cannot depend on order.
// Wildcard intents are then resolved in the caller's canonical position
// order, reads before writes, each scanning its node's sides in the fixed
// UP, LEFT, RIGHT, DOWN priority. Position order is derived from the grid,
// never from map iteration, so resolution is fully deterministic.
func (b *Bus) Resolve(order []Pos) (transfers []Transfer) {
	// Concrete read meets concrete write.
	for _, pos := range order {
		for _, d := range Around {
			to := Port{pos, d}
			w := b.wants[to]
			if w == nil || w.wild || w.group.taken {
				continue
			}
			from := to.Opposite()
			o := b.offers[from]
			if o == nil || o.wild || o.group.taken {
				continue
			}
			w.group.taken = true
			o.group.taken = true
			transfers = append(transfers, Transfer{From: from, To: to, Value: o.value})
		}
	}

	// Wildcard reads pick the first side with any pending write.
	for _, pos := range order {
		for _, d := range Around {
			to := Port{pos, d}
			w := b.wants[to]
			if w == nil || !w.wild || w.group.taken {
				continue
			}
			from := to.Opposite()
			o := b.offers[from]
			if o == nil || o.group.taken {
				continue
			}
			w.group.taken = true
			o.group.taken = true
			transfers = append(transfers, Transfer{From: from, To: to, Value: o.value})
		}
	}

	// Wildcard writes pick the first side with a pending read left over.
	for _, pos := range order {
		for _, d := range Around {
			from := Port{pos, d}
			o := b.offers[from]
			if o == nil || !o.wild || o.group.taken {
				continue
			}
			to := from.Opposite()
			w := b.wants[to]
			if w == nil || w.group.taken {
				continue
			}
			w.group.taken = true
			o.group.taken = true
			transfers = append(transfers, Transfer{From: from, To: to, Value: o.value})
		}
	}

	return
}
