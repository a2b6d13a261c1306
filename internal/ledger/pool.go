package ledger

import (
	"sync"

	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/model"
)

// TransactionPool stages transactions awaiting inclusion in a block. FIFO;
// every operation is atomic with respect to the others, so concurrent
// producers never interleave a partial push with a drain.
type TransactionPool struct {
	mu      sync.Mutex
	pending []model.Transaction
}

// NewTransactionPool returns an empty pool.
func NewTransactionPool() *TransactionPool {
	return &TransactionPool{}
}

// Push appends a transaction to the tail. Duplicates are permitted; the
// pool does not deduplicate.
func (p *TransactionPool) Push(tx model.Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = append(p.pending, tx)
}

// PopOne removes and returns the head of the queue.
func (p *TransactionPool) PopOne() (model.Transaction, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.pending) == 0 {
		return model.Transaction{}, false
	}
	head := p.pending[0]
	p.pending = p.pending[1:]
	return head, true
}

// PopAll drains the pool in insertion order, leaving it empty.
func (p *TransactionPool) PopAll() []model.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	drained := p.pending
	p.pending = nil
	return drained
}

// Requeue puts drained transactions back at the head of the queue, ahead of
// anything pushed since the drain. Used when a mining attempt is cancelled.
func (p *TransactionPool) Requeue(txs []model.Transaction) {
	if len(txs) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	restored := make([]model.Transaction, 0, len(txs)+len(p.pending))
	restored = append(restored, txs...)
	restored = append(restored, p.pending...)
	p.pending = restored
}

// Len returns the number of pending transactions.
func (p *TransactionPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.pending)
}

// IsEmpty reports whether the pool holds no transactions.
func (p *TransactionPool) IsEmpty() bool {
	return p.Len() == 0
}
