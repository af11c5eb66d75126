package service

import (
	"context"
	"time"
)

// AlertNotification is the templated payload sent when an alert is created.
type AlertNotification struct {
	SIMNumber     string
	Status        string
	AffectedBanks []string
	NextOfKin     []string
	Recipient     string
	CreatedAt     time.Time
}

// Notifier delivers a single alert message through an external email/SMS
// relay. Delivery is fire-and-forget: the caller logs failures and never
// rolls back the alert.
type Notifier interface {
	SendAlertNotification(ctx context.Context, notification *AlertNotification) error
}
