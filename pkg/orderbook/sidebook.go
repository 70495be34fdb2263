package orderbook

import (
	"container/heap"

	"github.com/gammazero/deque"
)

// level is all resting interest at one price on one side: a FIFO of
// arena handles plus live-order accounting. Canceled orders leave a
// tombstoned handle in the queue; liveOrders and liveQty count only
// orders still held by the arena.
type level struct {
	price      int64
	queue      deque.Deque[handle]
	liveOrders int
	liveQty    int64
}

// sideBook indexes one side's levels by price. The heap yields the best
// price first: max-heap for bids, min-heap for asks. Invariant: a price
// is in the levels map iff at least one live order rests there.
type sideBook struct {
	side      Side
	levels    map[int64]*level
	levelHeap *PriceHeap
}

func newSideBook(side Side) *sideBook {
	less := func(i, j int64) bool { return i > j } // max-heap, best bid first
	if side == SELL {
		less = func(i, j int64) bool { return i < j } // min-heap, best ask first
	}
	return &sideBook{
		side:      side,
		levels:    make(map[int64]*level),
		levelHeap: NewPriceHeap(less),
	}
}

// add appends a handle to the tail of its price level, creating the
// level if absent.
func (sb *sideBook) add(price int64, h handle, qty int64) {
	lvl := sb.levels[price]
	if lvl == nil {
		lvl = &level{price: price}
		sb.levels[price] = lvl
		heap.Push(sb.levelHeap, price)
	}
	lvl.queue.PushBack(h)
	lvl.liveOrders++
	lvl.liveQty += qty
}

// best returns the level at the side's best price, discarding stale
// heap entries left by levels that emptied since their push.
func (sb *sideBook) best() (*level, bool) {
	for {
		price, ok := sb.levelHeap.Peek()
		if !ok {
			return nil, false
		}
		lvl := sb.levels[price]
		if lvl == nil {
			heap.Pop(sb.levelHeap)
			continue
		}
		return lvl, true
	}
}

func (sb *sideBook) bestPrice() (int64, bool) {
	lvl, ok := sb.best()
	if !ok {
		return 0, false
	}
	return lvl.price, true
}

// head returns the oldest live order at the level, popping tombstoned
// handles as they surface.
func (sb *sideBook) head(lvl *level, a *arena) (handle, *Order) {
	for lvl.queue.Len() > 0 {
		h := lvl.queue.Front()
		if o, ok := a.get(h); ok {
			return h, o
		}
		lvl.queue.PopFront()
	}
	panic("orderbook: level in index with no live orders")
}

// popHead removes the level's front handle after its order filled.
func (sb *sideBook) popHead(lvl *level) {
	lvl.queue.PopFront()
	lvl.liveOrders--
	if lvl.liveOrders == 0 {
		sb.drop(lvl)
	}
}

// retire accounts for an order removed from anywhere in the level's
// queue. The handle itself stays queued as a tombstone; the arena
// release makes it skippable in O(1).
func (sb *sideBook) retire(lvl *level, remainingQty int64) {
	lvl.liveOrders--
	lvl.liveQty -= remainingQty
	if lvl.liveOrders == 0 {
		sb.drop(lvl)
	}
}

// drop removes an emptied level. Its heap entry is reclaimed lazily by
// best.
func (sb *sideBook) drop(lvl *level) {
	delete(sb.levels, lvl.price)
}
