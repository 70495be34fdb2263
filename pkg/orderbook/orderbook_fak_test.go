package orderbook

import "testing"

func TestFAKRejectedOnEmptyBook(t *testing.T) {
	b := NewBook()

	trades := b.AddOrder(&Order{ID: 5, Side: BUY, TimeInForce: FAK, Price: 10, Qty: 3})
	if len(trades) != 0 {
		t.Fatalf("expected rejection, got %d trades", len(trades))
	}
	if b.Size() != 0 {
		t.Errorf("rejected FAK must not rest, size=%d", b.Size())
	}
}

func TestFAKRejectedWhenNotCrossing(t *testing.T) {
	b := NewBook()

	b.AddOrder(&Order{ID: 1, Side: SELL, Price: 100, Qty: 10})
	trades := b.AddOrder(&Order{ID: 2, Side: BUY, TimeInForce: FAK, Price: 99, Qty: 10})
	if len(trades) != 0 || b.Size() != 1 {
		t.Errorf("non-crossing FAK must be rejected, trades=%d size=%d", len(trades), b.Size())
	}
}

func TestFAKPartialFillDiscardsRemainder(t *testing.T) {
	b := NewBook()

	b.AddOrder(&Order{ID: 6, Side: SELL, Price: 10, Qty: 1})
	trades := b.AddOrder(&Order{ID: 7, Side: BUY, TimeInForce: FAK, Price: 10, Qty: 3})
	if len(trades) != 1 || trades[0].Qty() != 1 {
		t.Fatalf("expected 1 trade of qty 1, got %+v", trades)
	}
	if b.Size() != 0 {
		t.Errorf("FAK remainder must be discarded, size=%d", b.Size())
	}
	bids, asks := b.Levels()
	if len(bids) != 0 || len(asks) != 0 {
		t.Errorf("expected empty depth, got bids=%+v asks=%+v", bids, asks)
	}
}

func TestFAKFullFill(t *testing.T) {
	b := NewBook()

	b.AddOrder(&Order{ID: 1, Side: BUY, Price: 100, Qty: 10})
	trades := b.AddOrder(&Order{ID: 2, Side: SELL, TimeInForce: FAK, Price: 100, Qty: 10})
	if len(trades) != 1 || trades[0].Qty() != 10 {
		t.Fatalf("expected full fill, got %+v", trades)
	}
	if b.Size() != 0 {
		t.Errorf("expected empty book, size=%d", b.Size())
	}
}

func TestFAKSweepsMultipleLevels(t *testing.T) {
	b := NewBook()

	b.AddOrder(&Order{ID: 1, Side: SELL, Price: 100, Qty: 5})
	b.AddOrder(&Order{ID: 2, Side: SELL, Price: 101, Qty: 5})
	b.AddOrder(&Order{ID: 3, Side: SELL, Price: 102, Qty: 5})

	// crosses 100 and 101 but not 102; remainder dies
	trades := b.AddOrder(&Order{ID: 4, Side: BUY, TimeInForce: FAK, Price: 101, Qty: 20})
	if len(trades) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(trades))
	}
	if b.Size() != 1 {
		t.Errorf("only the 102 ask should survive, size=%d", b.Size())
	}
	bids, asks := b.Levels()
	if len(bids) != 0 {
		t.Errorf("FAK must never rest, bids=%+v", bids)
	}
	if len(asks) != 1 || asks[0].Price != 102 {
		t.Errorf("expected ask level 102, got %+v", asks)
	}
}

func TestFAKSellAgainstBids(t *testing.T) {
	b := NewBook()

	b.AddOrder(&Order{ID: 1, Side: BUY, Price: 100, Qty: 5})
	b.AddOrder(&Order{ID: 2, Side: BUY, Price: 99, Qty: 5})

	trades := b.AddOrder(&Order{ID: 3, Side: SELL, TimeInForce: FAK, Price: 99, Qty: 8})
	if len(trades) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(trades))
	}
	if trades[0].Bid.OrderID != 1 || trades[1].Bid.OrderID != 2 {
		t.Errorf("should sweep best bid first, got %+v", trades)
	}
	if trades[0].Qty() != 5 || trades[1].Qty() != 3 {
		t.Errorf("expected fills 5 then 3, got %+v", trades)
	}
	if b.Size() != 1 {
		t.Errorf("bid 2 keeps its remainder, size=%d", b.Size())
	}
}
