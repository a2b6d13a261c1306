// Package ledger maintains the append-only block chain and the pool of
// pending transactions.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/model"
	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/pkg/workerpool"
)

// Validation failures returned by AddBlock. Structural checks run before
// cryptographic ones, so callers can tell a wrongly positioned candidate
// from tampered content from missing proof of work.
var (
	ErrInvalidIndex        = errors.New("invalid block index")
	ErrInvalidPreviousHash = errors.New("invalid previous hash")
	ErrInvalidHash         = errors.New("invalid block hash")
	ErrInvalidDifficulty   = errors.New("insufficient proof of work")
)

// genesisTimestamp pins the genesis block so every chain instance starts
// from the identical well-known first block (2025-01-01T00:00:00Z).
const genesisTimestamp int64 = 1735689600000

const verifyWorkerCount = 8

// Blockchain is the authoritative ordered block list. Genesis is always
// present; appended blocks are immutable.
type Blockchain struct {
	mu         sync.RWMutex
	blocks     []model.Block
	difficulty uint32
}

// New builds a chain holding only the genesis block. The difficulty is the
// admission target for every mined block; genesis itself carries difficulty
// zero so it satisfies its own check.
func New(difficulty uint32) *Blockchain {
	genesis := model.NewBlock(0, genesisTimestamp, nil, model.Hash{}, 0)
	return &Blockchain{
		blocks:     []model.Block{genesis},
		difficulty: difficulty,
	}
}

// AddBlock validates the candidate against the current tip and appends it.
// Validation fails fast on the first violation and a rejection leaves the
// chain exactly as it was. Single writer: concurrent miners racing for the
// same tip lose through the ordinary stale-previous-hash path.
func (c *Blockchain) AddBlock(candidate model.Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tip := c.blocks[len(c.blocks)-1]
	if candidate.Index != tip.Index+1 {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidIndex, candidate.Index, tip.Index+1)
	}
	if candidate.PreviousHash != tip.Hash {
		return fmt.Errorf("%w: candidate %d does not link to tip %s", ErrInvalidPreviousHash, candidate.Index, tip.Hash)
	}
	if candidate.Hash != candidate.CalculateHash() {
		return fmt.Errorf("%w: cached digest does not match block content", ErrInvalidHash)
	}
	if !candidate.MeetsDifficulty(c.difficulty) {
		return fmt.Errorf("%w: hash %s has fewer than %d leading zero bits", ErrInvalidDifficulty, candidate.Hash, c.difficulty)
	}

	c.blocks = append(c.blocks, candidate.Clone())
	return nil
}

// Tip returns the most recently appended block.
func (c *Blockchain) Tip() model.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.blocks[len(c.blocks)-1].Clone()
}

// Blocks returns a copy of the whole chain for display or export.
func (c *Blockchain) Blocks() []model.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Block, len(c.blocks))
	for i, b := range c.blocks {
		out[i] = b.Clone()
	}
	return out
}

// Height returns the number of blocks including genesis.
func (c *Blockchain) Height() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return uint64(len(c.blocks))
}

// Difficulty returns the admission target for mined blocks.
func (c *Blockchain) Difficulty() uint32 {
	return c.difficulty
}

// Verify audits the whole chain. Cached hashes are recomputed concurrently,
// then linkage, indexes and proof of work are checked in order. Genesis is
// exempt from the difficulty target, matching AddBlock.
func (c *Blockchain) Verify(ctx context.Context) error {
	blocks := c.Blocks()

	if err := workerpool.Process(ctx, verifyWorkerCount, blocks, func(_ context.Context, b model.Block) error {
		if b.Hash != b.CalculateHash() {
			return fmt.Errorf("%w: block %d", ErrInvalidHash, b.Index)
		}
		return nil
	}); err != nil {
		return err
	}

	for i := 1; i < len(blocks); i++ {
		prev, cur := blocks[i-1], blocks[i]
		if cur.Index != prev.Index+1 {
			return fmt.Errorf("%w: block at position %d has index %d", ErrInvalidIndex, i, cur.Index)
		}
		if cur.PreviousHash != prev.Hash {
			return fmt.Errorf("%w: block %d", ErrInvalidPreviousHash, cur.Index)
		}
		if !cur.MeetsDifficulty(c.difficulty) {
			return fmt.Errorf("%w: block %d", ErrInvalidDifficulty, cur.Index)
		}
	}
	return nil
}
