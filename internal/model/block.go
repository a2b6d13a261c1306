package model

import (
	"crypto/sha256"
	"encoding/binary"
)

// Block is an ordered batch of transactions plus linkage and proof-of-work
// metadata. Transaction order is significant: it defines event order within
// the batch. Timestamp is unix milliseconds.
type Block struct {
	Index        uint64        `json:"index"`
	Timestamp    int64         `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	PreviousHash Hash          `json:"previous_hash"`
	Nonce        uint64        `json:"nonce"`
	Hash         Hash          `json:"hash"`
	Difficulty   uint32        `json:"difficulty"`
}

// NewBlock builds a block with nonce zero and the hash computed immediately.
func NewBlock(index uint64, timestamp int64, transactions []Transaction, previousHash Hash, difficulty uint32) Block {
	b := Block{
		Index:        index,
		Timestamp:    timestamp,
		Transactions: transactions,
		PreviousHash: previousHash,
		Difficulty:   difficulty,
	}
	b.Hash = b.CalculateHash()
	return b
}

// CalculateHash computes SHA-256 over the canonical block encoding.
//
// The layout is a wire contract: any independent implementation must produce
// the identical digest for identical logical content. All integers are
// big-endian fixed-width; variable-length fields carry a uint32 byte-length
// prefix. Field order: index, timestamp, previous_hash, nonce, transaction
// count then each transaction (sender, recipient, data, batch_id,
// event_type, timestamp), difficulty. The cached Hash field is not part of
// its own input.
func (b Block) CalculateHash() Hash {
	h := sha256.New()
	var buf [8]byte
	putUint64 := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	putUint32 := func(v uint32) {
		binary.BigEndian.PutUint32(buf[:4], v)
		h.Write(buf[:4])
	}
	putBytes := func(p []byte) {
		putUint32(uint32(len(p)))
		h.Write(p)
	}

	putUint64(b.Index)
	putUint64(uint64(b.Timestamp))
	h.Write(b.PreviousHash[:])
	putUint64(b.Nonce)
	putUint32(uint32(len(b.Transactions)))
	for _, tx := range b.Transactions {
		putBytes([]byte(tx.Sender))
		putBytes([]byte(tx.Recipient))
		putBytes([]byte(tx.Data))
		putBytes([]byte(tx.BatchID))
		putBytes([]byte(tx.EventType))
		putUint64(uint64(tx.Timestamp))
	}
	putUint32(b.Difficulty)

	var out Hash
	h.Sum(out[:0])
	return out
}

// RecalculateHash refreshes the cached digest after a field change, such as
// a nonce bump during mining. Only Hash is mutated.
func (b *Block) RecalculateHash() {
	b.Hash = b.CalculateHash()
}

// MeetsDifficulty reports whether the cached hash carries at least
// difficulty leading zero bits.
func (b Block) MeetsDifficulty(difficulty uint32) bool {
	return uint32(b.Hash.LeadingZeroBits()) >= difficulty
}

// Clone returns a deep copy; the transaction slice is not shared.
func (b Block) Clone() Block {
	c := b
	c.Transactions = append([]Transaction(nil), b.Transactions...)
	return c
}
