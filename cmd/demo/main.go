package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/quangdm/limitbook/config"
	"github.com/quangdm/limitbook/pkg/logging"
	"github.com/quangdm/limitbook/pkg/orderbook"
	"github.com/quangdm/limitbook/pkg/tape"
)

func defaultDemo() *config.DemoConfig {
	return &config.DemoConfig{
		Orders:   100_000,
		MinPrice: 100,
		MaxPrice: 200,
		MaxQty:   100,
	}
}

func randomOrder(rng *rand.Rand, id uint64, cfg *config.DemoConfig) *orderbook.Order {
	side := orderbook.BUY
	if rng.Intn(2) == 0 {
		side = orderbook.SELL
	}
	tif := orderbook.GTC
	if rng.Intn(10) == 0 {
		tif = orderbook.FAK
	}
	return &orderbook.Order{
		ID:          id,
		Side:        side,
		TimeInForce: tif,
		Price:       cfg.MinPrice + rng.Int63n(cfg.MaxPrice-cfg.MinPrice+1),
		Qty:         1 + rng.Int63n(cfg.MaxQty),
	}
}

func main() {
	configFile := flag.String("config", "", "path to yaml config")
	flag.Parse()

	demo := defaultDemo()
	level := logging.INFO
	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			zap.S().Fatalf("load config: %v", err)
		}
		if cfg.Demo != nil {
			demo = cfg.Demo
		}
		level = logging.ParseLevel(cfg.LogLevel)
	}

	logger := logging.NewLogger(level)
	defer logger.Sync() //nolint:errcheck
	ctx := logging.WithRequestID(context.Background(), "")

	book := orderbook.NewBook()
	tp := tape.New()
	book.RegisterTradeCallback(tp.Record)

	// kịch bản cố định trước, sau đó mới chạy random
	scripted(ctx, logger, book)

	seed := demo.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	for i := 0; i < demo.Orders; i++ {
		book.AddOrder(randomOrder(rng, uint64(1000+i), demo))
	}
	elapsed := time.Since(start)

	bids, asks := book.Levels()
	fmt.Println("--------")
	fmt.Printf("🏁 Total Orders     : %d\n", demo.Orders)
	fmt.Printf("✅ Total Trades     : %d\n", tp.Count())
	fmt.Printf("📦 Total Matched Qty: %d\n", tp.Volume())
	fmt.Printf("💰 VWAP             : %s\n", tp.VWAP().StringFixed(2))
	fmt.Printf("📖 Resting Orders   : %d (%d bid / %d ask levels)\n", book.Size(), len(bids), len(asks))
	fmt.Printf("⏱️ Time Taken       : %s\n", elapsed)
}

// scripted walks the book through a fixed submit/cancel/modify sequence
// and logs the counters after each step.
func scripted(ctx context.Context, logger *logging.Logger, book *orderbook.Book) {
	book.AddOrder(&orderbook.Order{ID: 1, Side: orderbook.BUY, TimeInForce: orderbook.GTC, Price: 15, Qty: 4})
	logger.Info(ctx, "submitted GTC buy", zap.Int("size", book.Size()))

	book.CancelOrder(1)
	logger.Info(ctx, "canceled order 1", zap.Int("size", book.Size()))

	book.AddOrder(&orderbook.Order{ID: 2, Side: orderbook.BUY, TimeInForce: orderbook.GTC, Price: 15, Qty: 4})
	trades := book.AddOrder(&orderbook.Order{ID: 3, Side: orderbook.SELL, TimeInForce: orderbook.GTC, Price: 15, Qty: 2})
	logger.Info(ctx, "crossed the book", zap.Int("trades", len(trades)), zap.Int("size", book.Size()))

	trades = book.ModifyOrder(orderbook.ModifyOrder{ID: 2, Price: 16, Side: orderbook.BUY, Qty: 2})
	logger.Info(ctx, "modified order 2", zap.Int("trades", len(trades)), zap.Int("size", book.Size()))

	trades = book.AddOrder(&orderbook.Order{ID: 4, Side: orderbook.SELL, TimeInForce: orderbook.FAK, Price: 16, Qty: 10})
	logger.Info(ctx, "submitted FAK sell", zap.Int("trades", len(trades)), zap.Int("size", book.Size()))
}
