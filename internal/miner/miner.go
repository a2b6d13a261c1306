// Package miner searches for proof-of-work nonces over pending transactions.
package miner

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/model"
)

// cancelCheckInterval is how many nonces are tried between context checks.
// The search itself is CPU-bound; this bounds cancellation latency.
const cancelCheckInterval = 4096

// Miner assembles candidate blocks from the pool and brute-forces a nonce
// until the difficulty target is met.
type Miner struct {
	logger  *zap.Logger
	chain   ChainView
	pool    Pool
	metrics Metrics
	now     func() int64
}

// New builds a Miner with its dependencies.
func New(chain ChainView, pool Pool, metrics Metrics, logger *zap.Logger) (*Miner, error) {
	if chain == nil {
		return nil, errors.New("chain view is required")
	}
	if pool == nil {
		return nil, errors.New("transaction pool is required")
	}
	if metrics == nil {
		return nil, errors.New("miner metrics is required")
	}

	return &Miner{
		logger:  logger.Named("miner"),
		chain:   chain,
		pool:    pool,
		metrics: metrics,
		now:     func() int64 { return time.Now().UnixMilli() },
	}, nil
}

// Mine runs one attempt: drain the pool, build a candidate over the current
// tip and iterate nonces from zero until the hash meets the difficulty. An
// empty pool still yields a block. On cancellation the drained transactions
// go back to the pool and the context error is returned.
func (m *Miner) Mine(ctx context.Context, difficulty uint32) (*model.Block, error) {
	started := time.Now()
	transactions := m.pool.PopAll()
	tip := m.chain.Tip()

	block := model.NewBlock(tip.Index+1, m.now(), transactions, tip.Hash, difficulty)
	m.logger.Debug("starting nonce search",
		zap.Uint64("index", block.Index),
		zap.Int("transactions", len(transactions)),
		zap.Uint32("difficulty", difficulty),
	)

	var attempts uint64
	for !block.MeetsDifficulty(difficulty) {
		if attempts%cancelCheckInterval == 0 && ctx.Err() != nil {
			m.pool.Requeue(transactions)
			m.metrics.ObserveMine(ctx.Err(), attempts, started)
			m.logger.Info("mining cancelled, transactions requeued",
				zap.Uint64("index", block.Index),
				zap.Uint64("attempts", attempts),
				zap.Int("transactions", len(transactions)),
			)
			return nil, ctx.Err()
		}
		block.Nonce++
		block.RecalculateHash()
		attempts++
	}

	m.metrics.ObserveMine(nil, attempts, started)
	m.logger.Info("block solved",
		zap.Uint64("index", block.Index),
		zap.Uint64("nonce", block.Nonce),
		zap.String("hash", block.Hash.String()),
		zap.Uint64("attempts", attempts),
	)
	return &block, nil
}
