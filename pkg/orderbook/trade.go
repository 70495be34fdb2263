package orderbook

// TradeLeg is one side's view of a match. Each leg reports its own
// order's limit price, so the two legs of a trade may carry different
// prices.
type TradeLeg struct {
	OrderID uint64
	Price   int64
	Qty     int64
}

// Trade records one match between the best bid and the best ask.
type Trade struct {
	Bid TradeLeg
	Ask TradeLeg
}

// Qty returns the traded quantity, identical on both legs.
func (t Trade) Qty() int64 {
	return t.Bid.Qty
}
