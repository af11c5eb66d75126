package entity

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel buckets a fraud scan outcome.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// SaleRecord is one SIM sale captured by a distributor dealer.
type SaleRecord struct {
	ID        uuid.UUID `json:"id"`
	DealerID  uuid.UUID `json:"dealer_id"`
	SIMNumber string    `json:"sim_number"`
	Amount    int64     `json:"amount"` // Sale amount in cents.
	SoldAt    time.Time `json:"sold_at"`
	CreatedAt time.Time `json:"created_at"`
}

// EwasteLog is one recorded hand-in of retired SIM or device stock.
type EwasteLog struct {
	ID          uuid.UUID `json:"id"`
	DealerID    uuid.UUID `json:"dealer_id"`
	ItemType    string    `json:"item_type"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	LoggedAt    time.Time `json:"logged_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// FraudSignals are the inputs to the fraud risk policy, derived from a
// dealer's sales history.
type FraudSignals struct {
	DuplicateSIM bool `json:"duplicate_sim"` // The same SIM number appears in more than one sale.
	SpikeCount   int  `json:"spike_count"`   // Number of days with unusually high sale volume.
}

// FraudCase is an opened investigation against a dealer.
type FraudCase struct {
	ID        uuid.UUID    `json:"id"`
	DealerID  uuid.UUID    `json:"dealer_id"`
	SIMNumber string       `json:"sim_number"` // The offending SIM when a duplicate triggered the case, empty otherwise.
	Risk      RiskLevel    `json:"risk"`
	Signals   FraudSignals `json:"signals"`
	Open      bool         `json:"open"`
	OpenedAt  time.Time    `json:"opened_at"`
	CreatedAt time.Time    `json:"created_at"`
}
