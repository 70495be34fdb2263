package orderbook

// orderRef locates a live order: the side it rests on, its price level
// and its arena handle. The orders map holding these refs is the single
// authority for whether an id is live.
type orderRef struct {
	side  Side
	price int64
	h     handle
}

// Book is a single-instrument limit order book with price-time
// priority. Its internals assume exclusive access per call; callers
// sharing one Book across goroutines must serialize every operation
// behind one external lock.
type Book struct {
	arena  *arena
	bids   *sideBook
	asks   *sideBook
	orders map[uint64]orderRef

	callbacks []func([]Trade)
}

func NewBook() *Book {
	return &Book{
		arena:  newArena(),
		bids:   newSideBook(BUY),
		asks:   newSideBook(SELL),
		orders: make(map[uint64]orderRef),
	}
}

// RegisterTradeCallback adds an observer invoked after every AddOrder
// or ModifyOrder that produced trades.
func (b *Book) RegisterTradeCallback(fn func([]Trade)) {
	b.callbacks = append(b.callbacks, fn)
}

// Size returns the number of live orders in the book.
func (b *Book) Size() int {
	return len(b.orders)
}

// AddOrder admits an order and runs the matching loop, returning the
// trades produced. Silent no-ops, returning no trades: a duplicate id,
// an order with non-positive quantity or negative price, and a FAK
// order that cannot match at least partially right away.
func (b *Book) AddOrder(order *Order) []Trade {
	if order == nil || order.ID == 0 || order.Qty <= 0 || order.Price < 0 {
		return nil
	}
	if _, ok := b.orders[order.ID]; ok {
		return nil
	}
	if order.TimeInForce == FAK && !b.canMatch(order.Side, order.Price) {
		return nil
	}

	rest := *order
	rest.remainingQty = rest.Qty
	h := b.arena.alloc(rest)

	side := b.sideBook(order.Side)
	side.add(order.Price, h, rest.Qty)
	b.orders[order.ID] = orderRef{side: order.Side, price: order.Price, h: h}

	trades := b.match()

	// a FAK remainder never survives past this call
	if order.TimeInForce == FAK {
		b.CancelOrder(order.ID)
	}

	if len(trades) > 0 {
		for _, cb := range b.callbacks {
			cb(trades)
		}
	}
	return trades
}

// CancelOrder removes a resting order. Unknown ids are a no-op.
func (b *Book) CancelOrder(id uint64) {
	ref, ok := b.orders[id]
	if !ok {
		return
	}
	o, ok := b.arena.get(ref.h)
	if !ok {
		return
	}
	remaining := o.remainingQty
	side := b.sideBook(ref.side)
	lvl := side.levels[ref.price]

	b.arena.release(ref.h)
	side.retire(lvl, remaining)
	delete(b.orders, id)
}

// ModifyOrder cancels the target order and resubmits it with the new
// price, side and quantity, keeping the original time in force. The
// order re-enters at the tail of its new level, so queue priority is
// reset. Unknown ids are a no-op.
func (b *Book) ModifyOrder(mod ModifyOrder) []Trade {
	ref, ok := b.orders[mod.ID]
	if !ok {
		return nil
	}
	o, ok := b.arena.get(ref.h)
	if !ok {
		return nil
	}
	tif := o.TimeInForce
	b.CancelOrder(mod.ID)
	return b.AddOrder(mod.toOrder(tif))
}

// canMatch reports whether an order at price would trade immediately
// against the opposing side's best level. It gates FAK admission.
func (b *Book) canMatch(side Side, price int64) bool {
	if side == BUY {
		bestAsk, ok := b.asks.bestPrice()
		return ok && price >= bestAsk
	}
	bestBid, ok := b.bids.bestPrice()
	return ok && price <= bestBid
}

// match crosses the book while the best bid price is at or above the
// best ask price, always trading the oldest order at each best level.
// Each iteration emits one trade; filled orders are popped and emptied
// levels dropped as they occur.
func (b *Book) match() []Trade {
	var trades []Trade
	for {
		bidLvl, ok := b.bids.best()
		if !ok {
			break
		}
		askLvl, ok := b.asks.best()
		if !ok {
			break
		}
		if bidLvl.price < askLvl.price {
			break
		}

		bidH, bid := b.bids.head(bidLvl, b.arena)
		askH, ask := b.asks.head(askLvl, b.arena)

		qty := min(bid.remainingQty, ask.remainingQty)
		if err := bid.Fill(qty); err != nil {
			panic(err)
		}
		if err := ask.Fill(qty); err != nil {
			panic(err)
		}
		bidLvl.liveQty -= qty
		askLvl.liveQty -= qty

		trades = append(trades, Trade{
			Bid: TradeLeg{OrderID: bid.ID, Price: bid.Price, Qty: qty},
			Ask: TradeLeg{OrderID: ask.ID, Price: ask.Price, Qty: qty},
		})

		if bid.IsFilled() {
			delete(b.orders, bid.ID)
			b.arena.release(bidH)
			b.bids.popHead(bidLvl)
		}
		if ask.IsFilled() {
			delete(b.orders, ask.ID)
			b.arena.release(askH)
			b.asks.popHead(askLvl)
		}
	}
	return trades
}

func (b *Book) sideBook(side Side) *sideBook {
	if side == BUY {
		return b.bids
	}
	return b.asks
}
