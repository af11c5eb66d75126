package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "simsure/internal/domain/errors"
)

// AlertStatus represents the lifecycle state of a SIM event alert.
type AlertStatus string

// Status labels kept exactly as the product surfaces them to reviewers.
// StatusPending survives as a non-terminal synonym of StatusNew for alert
// documents written by earlier clients.
const (
	StatusNew           AlertStatus = "new"
	StatusPending       AlertStatus = "pending"
	StatusAuthorized    AlertStatus = "Authorized"
	StatusNotAuthorized AlertStatus = "Not Authorized"
	StatusResolved      AlertStatus = "resolved"
)

// IsTerminal reports whether the status accepts no further transitions.
func (s AlertStatus) IsTerminal() bool {
	switch s {
	case StatusAuthorized, StatusNotAuthorized, StatusResolved:
		return true
	default:
		return false
	}
}

// Alert is a record of a detected or manually triggered SIM event and its
// resolution. Alerts are embedded in the owning account document and carry a
// stable UUID so that authorize/deny operations survive serialization.
type Alert struct {
	ID             uuid.UUID   `json:"id" firestore:"id"`
	SIMNumber      string      `json:"sim_number" firestore:"simNumber"`
	Status         AlertStatus `json:"status" firestore:"status"`
	AffectedBanks  []string    `json:"affected_banks" firestore:"affectedBanks"`   // Bank names snapshotted from the profile at creation.
	NotifiedKin    []string    `json:"notified_kin" firestore:"notifiedKin"`       // Next-of-kin descriptors ("name <number>") notified at creation.
	AuthorizedBy   string      `json:"authorized_by" firestore:"authorizedBy"`     // Display name of the reviewer, set on authorize/deny.
	AuthorizedAt   *time.Time  `json:"authorized_at" firestore:"authorizedAt"`     // Timestamp of the authorize/deny decision.
	CreatedAt      time.Time   `json:"created_at" firestore:"createdAt"`
}

// NewAlert builds an alert in the initial non-terminal state with a stable ID.
func NewAlert(simNumber string, affectedBanks, notifiedKin []string, now time.Time) Alert {
	return Alert{
		ID:            uuid.New(),
		SIMNumber:     simNumber,
		Status:        StatusNew,
		AffectedBanks: affectedBanks,
		NotifiedKin:   notifiedKin,
		CreatedAt:     now,
	}
}

// Active reports whether the alert still awaits a reviewer decision.
func (al *Alert) Active() bool {
	return !al.Status.IsTerminal()
}

// Authorize moves the alert to Authorized, recording the actor and time.
// Re-authorizing an already authorized alert is a no-op so that repeated
// submissions cannot double-credit. Any other terminal state is rejected.
func (al *Alert) Authorize(actor string, now time.Time) error {
	return al.decide(StatusAuthorized, actor, now)
}

// Deny moves the alert to Not Authorized, recording the actor and time.
func (al *Alert) Deny(actor string, now time.Time) error {
	return al.decide(StatusNotAuthorized, actor, now)
}

func (al *Alert) decide(target AlertStatus, actor string, now time.Time) error {
	if al.Status == target {
		return nil
	}
	if al.Status.IsTerminal() {
		return domainerrors.ErrAlertTerminal
	}

	al.Status = target
	al.AuthorizedBy = actor
	al.AuthorizedAt = &now

	return nil
}

// Resolve moves the alert to resolved. Resolving a resolved alert is a
// no-op; resolving an authorized or denied alert is rejected.
func (al *Alert) Resolve() error {
	if al.Status == StatusResolved {
		return nil
	}
	if al.Status.IsTerminal() {
		return domainerrors.ErrAlertTerminal
	}

	al.Status = StatusResolved

	return nil
}
