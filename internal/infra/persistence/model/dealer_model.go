// Package model holds the GORM-specific structs for the distributor
// back-office tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleRecordModel is the GORM-specific struct for the 'sale_records' table.
type SaleRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	DealerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SIMNumber string    `gorm:"column:sim_number;type:varchar(32);not null;index"`
	Amount    int64     `gorm:"not null"`
	SoldAt    time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SaleRecordModel) TableName() string {
	return "sale_records"
}

// EwasteLogModel is the GORM-specific struct for the 'ewaste_logs' table.
type EwasteLogModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	DealerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemType    string    `gorm:"type:varchar(64);not null"`
	Quantity    int       `gorm:"not null"`
	Description string    `gorm:"type:text"`
	LoggedAt    time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EwasteLogModel) TableName() string {
	return "ewaste_logs"
}

// FraudCaseModel is the GORM-specific struct for the 'fraud_cases' table.
type FraudCaseModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	DealerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SIMNumber    string    `gorm:"column:sim_number;type:varchar(32)"`
	Risk         string    `gorm:"type:varchar(16);not null"`
	DuplicateSIM bool      `gorm:"column:duplicate_sim;not null"`
	SpikeCount   int       `gorm:"not null"`
	Open         bool      `gorm:"not null;default:true"`
	OpenedAt     time.Time `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FraudCaseModel) TableName() string {
	return "fraud_cases"
}
