package model

import "errors"

// ErrInvalidEventType reports an event tag outside the recognized set.
var ErrInvalidEventType = errors.New("unrecognized event type")

// EventType tags the kind of supply-chain event a transaction records.
type EventType string

const (
	EventHarvest      EventType = "HARVEST"
	EventTransport    EventType = "TRANSPORT"
	EventStorage      EventType = "STORAGE"
	EventProcessing   EventType = "PROCESSING"
	EventQualityCheck EventType = "QUALITY_CHECK"
)

// recognizedEventTypes is an open set rather than a closed enum: future
// event kinds extend it without breaking wire compatibility.
var recognizedEventTypes = map[EventType]struct{}{
	EventHarvest:      {},
	EventTransport:    {},
	EventStorage:      {},
	EventProcessing:   {},
	EventQualityCheck: {},
}

// Recognized reports whether the tag belongs to the known event set.
func (e EventType) Recognized() bool {
	_, ok := recognizedEventTypes[e]
	return ok
}

// Transaction records one supply-chain event between two actors. Data is an
// opaque application payload (JSON by convention) the ledger never
// interprets. Timestamp is unix milliseconds.
type Transaction struct {
	Sender    Address   `json:"sender"`
	Recipient Address   `json:"recipient"`
	Data      string    `json:"data"`
	BatchID   string    `json:"batch_id"`
	EventType EventType `json:"event_type"`
	Timestamp int64     `json:"timestamp"`
}

// NewTransaction builds a transaction. Address validity is enforced upstream
// by ParseAddress; construction itself does not validate.
func NewTransaction(sender, recipient Address, data, batchID string, eventType EventType, timestamp int64) Transaction {
	return Transaction{
		Sender:    sender,
		Recipient: recipient,
		Data:      data,
		BatchID:   batchID,
		EventType: eventType,
		Timestamp: timestamp,
	}
}

// Clone returns a by-value copy.
func (t Transaction) Clone() Transaction {
	return t
}

// Equal compares all fields structurally.
func (t Transaction) Equal(other Transaction) bool {
	return t == other
}
