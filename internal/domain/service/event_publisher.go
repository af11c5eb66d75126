package service

import (
	"context"
	"time"
)

// Alert lifecycle event types.
const (
	AlertEventCreated    = "alert.created"
	AlertEventAuthorized = "alert.authorized"
	AlertEventDenied     = "alert.denied"
	AlertEventResolved   = "alert.resolved"
)

// AlertEvent is published whenever an alert changes state.
type AlertEvent struct {
	Type       string    `json:"type"`
	AlertID    string    `json:"alert_id"`
	AccountID  string    `json:"account_id"`
	SIMNumber  string    `json:"sim_number"`
	Status     string    `json:"status"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes alert lifecycle events to downstream consumers.
type EventPublisher interface {
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error
	Close() error
}
