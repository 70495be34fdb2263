package orderbook

// handle is a stable reference to an arena slot. Generations guard
// against a released slot being reused while a stale handle for it is
// still queued at some price level.
type handle struct {
	idx uint32
	gen uint32
}

type slot struct {
	order Order
	gen   uint32
	used  bool
}

// arena owns every live Order in the book. Price level queues and the
// order index hold handles only, never pointers into the arena's
// backing storage.
type arena struct {
	slots []slot
	free  []uint32
}

func newArena() *arena {
	return &arena{}
}

func (a *arena) alloc(o Order) handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.order = o
		s.used = true
		return handle{idx: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot{order: o, used: true})
	return handle{idx: uint32(len(a.slots) - 1)}
}

// get resolves a handle to its order. It returns false for handles
// whose slot has been released, even if the slot was reused since.
func (a *arena) get(h handle) (*Order, bool) {
	if int(h.idx) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.idx]
	if !s.used || s.gen != h.gen {
		return nil, false
	}
	return &s.order, true
}

func (a *arena) release(h handle) {
	s := &a.slots[h.idx]
	if !s.used || s.gen != h.gen {
		return
	}
	s.used = false
	s.gen++
	s.order = Order{}
	a.free = append(a.free, h.idx)
}
