package orderbook

import "errors"

var (
	// ErrOverfill reports a fill larger than an order's remaining
	// quantity. It is never produced by the matching loop itself.
	ErrOverfill = errors.New("fill exceeds remaining quantity")
)
