package orderbook

import "fmt"

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

type TimeInForce string

const (
	GTC TimeInForce = "GTC" // good till canceled
	FAK TimeInForce = "FAK" // fill and kill
)

// Order is one resting or incoming order. The book copies it into its
// arena on admission; the caller's value is never retained.
type Order struct {
	ID          uint64
	Side        Side
	TimeInForce TimeInForce
	Price       int64
	Qty         int64 // initial quantity

	remainingQty int64
}

func NewOrder(id uint64, side Side, tif TimeInForce, price, qty int64) *Order {
	return &Order{
		ID:           id,
		Side:         side,
		TimeInForce:  tif,
		Price:        price,
		Qty:          qty,
		remainingQty: qty,
	}
}

func (o *Order) RemainingQty() int64 {
	return o.remainingQty
}

func (o *Order) FilledQty() int64 {
	return o.Qty - o.remainingQty
}

func (o *Order) IsFilled() bool {
	return o.remainingQty == 0
}

// Fill reduces the remaining quantity. Filling past the remaining
// quantity is a logic defect in the caller, not a business condition,
// and surfaces as ErrOverfill.
func (o *Order) Fill(qty int64) error {
	if qty > o.remainingQty {
		return fmt.Errorf("order %d: %w: fill %d, remaining %d", o.ID, ErrOverfill, qty, o.remainingQty)
	}
	o.remainingQty -= qty
	return nil
}

// ModifyOrder carries a replacement request for a resting order. The
// original order's time in force is preserved across the replace.
type ModifyOrder struct {
	ID    uint64
	Price int64
	Side  Side
	Qty   int64
}

func (m ModifyOrder) toOrder(tif TimeInForce) *Order {
	return NewOrder(m.ID, m.Side, tif, m.Price, m.Qty)
}
