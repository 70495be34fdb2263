// Package tape keeps a running record of executed trades and derived
// statistics. It plugs into the book's trade callback.
package tape

import (
	"github.com/shopspring/decimal"

	"github.com/quangdm/limitbook/pkg/orderbook"
)

// Tape accumulates trades and their aggregate statistics. Like the book
// it observes, it assumes a single thread of control. Price statistics
// use the sell-side leg of each trade.
type Tape struct {
	trades   []orderbook.Trade
	volume   int64
	notional decimal.Decimal
}

func New() *Tape {
	return &Tape{notional: decimal.Zero}
}

// Record appends a batch of trades. The signature matches
// Book.RegisterTradeCallback.
func (t *Tape) Record(trades []orderbook.Trade) {
	for _, tr := range trades {
		t.trades = append(t.trades, tr)
		t.volume += tr.Qty()
		px := decimal.NewFromInt(tr.Ask.Price)
		t.notional = t.notional.Add(px.Mul(decimal.NewFromInt(tr.Qty())))
	}
}

// Count returns the number of recorded trades.
func (t *Tape) Count() int {
	return len(t.trades)
}

// Volume returns the total matched quantity.
func (t *Tape) Volume() int64 {
	return t.volume
}

// Notional returns the total traded value, price times quantity summed
// over every trade.
func (t *Tape) Notional() decimal.Decimal {
	return t.notional
}

// VWAP returns the volume-weighted average price, zero when nothing has
// traded yet.
func (t *Tape) VWAP() decimal.Decimal {
	if t.volume == 0 {
		return decimal.Zero
	}
	return t.notional.Div(decimal.NewFromInt(t.volume))
}

// Last returns the most recent trade.
func (t *Tape) Last() (orderbook.Trade, bool) {
	if len(t.trades) == 0 {
		return orderbook.Trade{}, false
	}
	return t.trades[len(t.trades)-1], true
}
