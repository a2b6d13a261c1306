// Package node exposes the ledger core to front ends and drives the mining
// scheduler.
package node

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/clock"
	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/model"
)

const (
	idleSleepDuration  = 2 * time.Second
	errorSleepDuration = 5 * time.Second

	// Upper bound on scheduler cycles per second. Keeps a low-difficulty
	// deployment from spinning the CPU on back-to-back searches.
	defaultCycleRate = 10
)

// SubmitRequest carries an unvalidated supply-chain event from a producer.
type SubmitRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Data      string `json:"data"`
	BatchID   string `json:"batch_id"`
	EventType string `json:"event_type"`
}

// Service wires chain, pool and miner behind the operations consumed by the
// front end and the mining scheduler.
type Service struct {
	logger  *zap.Logger
	chain   Chain
	pool    Pool
	miner   Miner
	metrics Metrics

	rl    ratelimit.Limiter
	sleep func(context.Context, time.Duration) error
	now   func() int64

	idleSleepDuration  time.Duration
	errorSleepDuration time.Duration
}

// NewService builds a Service with its dependencies.
func NewService(chain Chain, pool Pool, miner Miner, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if chain == nil {
		return nil, errors.New("chain is required")
	}
	if pool == nil {
		return nil, errors.New("transaction pool is required")
	}
	if miner == nil {
		return nil, errors.New("miner is required")
	}
	if metrics == nil {
		return nil, errors.New("node metrics is required")
	}

	return &Service{
		logger:             logger.Named("node"),
		chain:              chain,
		pool:               pool,
		miner:              miner,
		metrics:            metrics,
		rl:                 ratelimit.New(defaultCycleRate),
		sleep:              clock.SleepWithContext,
		now:                func() int64 { return time.Now().UnixMilli() },
		idleSleepDuration:  idleSleepDuration,
		errorSleepDuration: errorSleepDuration,
	}, nil
}

// SubmitTransaction validates the event and stages it for mining. Address
// failures reject the single submission and leave pool and chain untouched.
func (s *Service) SubmitTransaction(req SubmitRequest) (err error) {
	defer func() {
		s.metrics.ObserveSubmit(err)
		s.metrics.SetPoolSize(s.pool.Len())
	}()

	sender, err := model.ParseAddress(req.Sender)
	if err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	recipient, err := model.ParseAddress(req.Recipient)
	if err != nil {
		return fmt.Errorf("recipient: %w", err)
	}
	eventType := model.EventType(req.EventType)
	if !eventType.Recognized() {
		return fmt.Errorf("%w: %q", model.ErrInvalidEventType, req.EventType)
	}

	tx := model.NewTransaction(sender, recipient, req.Data, req.BatchID, eventType, s.now())
	s.pool.Push(tx)
	s.logger.Debug("transaction staged",
		zap.String("batch_id", tx.BatchID),
		zap.String("event_type", string(tx.EventType)),
	)
	return nil
}

// GetChain returns a read-only copy of the chain for display or export.
func (s *Service) GetChain() []model.Block {
	return s.chain.Blocks()
}

// TryAppendBlock runs the validated append path for an externally produced
// candidate block.
func (s *Service) TryAppendBlock(candidate model.Block) error {
	if err := s.chain.AddBlock(candidate); err != nil {
		s.logger.Warn("candidate block rejected",
			zap.Uint64("index", candidate.Index),
			zap.Error(err),
		)
		return err
	}
	s.metrics.SetChainHeight(s.chain.Height())
	return nil
}

// RunMiningCycle performs one mining attempt and, when a block is solved,
// submits it through the validated append path.
func (s *Service) RunMiningCycle(ctx context.Context) (*model.Block, error) {
	started := time.Now()

	block, err := s.miner.Mine(ctx, s.chain.Difficulty())
	if err != nil {
		s.metrics.ObserveMiningCycle(err, started)
		return nil, err
	}

	if err := s.chain.AddBlock(*block); err != nil {
		s.metrics.ObserveMiningCycle(err, started)
		return nil, fmt.Errorf("append mined block: %w", err)
	}

	s.metrics.ObserveMiningCycle(nil, started)
	s.metrics.SetChainHeight(s.chain.Height())
	s.metrics.SetPoolSize(s.pool.Len())
	s.logger.Info("block appended",
		zap.Uint64("index", block.Index),
		zap.String("hash", block.Hash.String()),
		zap.Int("transactions", len(block.Transactions)),
	)
	return block, nil
}

// Run drives mining cycles until the context is cancelled. An idle pool
// sleeps instead of mining empty blocks back to back; failed cycles back
// off before retrying.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if s.pool.IsEmpty() {
			if err := s.sleep(ctx, s.idleSleepDuration); err != nil {
				return err
			}
			continue
		}

		s.rl.Take()
		if _, err := s.RunMiningCycle(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("mining cycle failed, backing off",
				zap.Error(err),
				zap.Duration("sleep", s.errorSleepDuration),
			)
			if sleepErr := s.sleep(ctx, s.errorSleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}
