// Package queue defines message payloads exchanged over the message broker.
package queue

// ItemChangedEvent is published after every successful item mutation. It
// carries a snapshot of the item so downstream consumers can log or audit
// the change without querying the primary database. For deletes the
// snapshot holds the last known field values.
type ItemChangedEvent struct {
	Action      string `json:"action"` // create, update or delete
	ItemID      uint64 `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OccurredAt  string `json:"occurred_at"`
}
