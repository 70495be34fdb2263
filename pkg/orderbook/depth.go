package orderbook

import "sort"

// Level is the aggregate view of one price level: its price and the
// summed remaining quantity of every order resting there.
type Level struct {
	Price int64
	Qty   int64
}

// Levels returns a depth snapshot of both sides ordered best price
// first. It only reads the side indexes; book state is unchanged.
func (b *Book) Levels() (bids, asks []Level) {
	return b.bids.snapshot(), b.asks.snapshot()
}

func (sb *sideBook) snapshot() []Level {
	out := make([]Level, 0, len(sb.levels))
	for _, lvl := range sb.levels {
		out = append(out, Level{Price: lvl.price, Qty: lvl.liveQty})
	}
	sort.Slice(out, func(i, j int) bool {
		return sb.levelHeap.less(out[i].Price, out[j].Price)
	})
	return out
}
