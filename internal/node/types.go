package node

import (
	"context"
	"time"

	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Chain is the append-validated block chain consumed by the node.
	Chain interface {
		AddBlock(candidate model.Block) error
		Blocks() []model.Block
		Height() uint64
		Difficulty() uint32
	}

	// Pool stages submitted transactions until a mining cycle drains them.
	Pool interface {
		Push(tx model.Transaction)
		Len() int
		IsEmpty() bool
	}

	// Miner runs one proof-of-work attempt.
	Miner interface {
		Mine(ctx context.Context, difficulty uint32) (*model.Block, error)
	}

	// Metrics records node operations.
	Metrics interface {
		ObserveSubmit(err error)
		ObserveMiningCycle(err error, started time.Time)
		SetChainHeight(height uint64)
		SetPoolSize(size int)
	}
)
