package miner

import (
	"time"

	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainView exposes the chain state a mining attempt needs.
	ChainView interface {
		Tip() model.Block
	}

	// Pool supplies pending transactions and takes them back when an
	// attempt is cancelled.
	Pool interface {
		PopAll() []model.Transaction
		Requeue(txs []model.Transaction)
	}

	// Metrics records mining attempt outcomes.
	Metrics interface {
		ObserveMine(err error, attempts uint64, started time.Time)
	}
)
