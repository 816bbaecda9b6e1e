package domain

import "time"

// Outcome is the terminal result of one delivery attempt.
type Outcome string

const (
	OutcomeSent   Outcome = "sent"
	OutcomeFailed Outcome = "failed"
)

// DeliveryRecord is one (item × destination) delivery attempt, kept for
// auditing. The pending queue itself is never persisted; these records are.
type DeliveryRecord struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"item_id"`
	ItemName    string    `json:"item_name"`
	ItemType    ItemType  `json:"item_type"`
	SinkKind    string    `json:"sink_kind"`
	Destination string    `json:"destination"`
	Outcome     Outcome   `json:"outcome"`
	Error       *string   `json:"error,omitempty"`
	AttemptedAt time.Time `json:"attempted_at"`
}
