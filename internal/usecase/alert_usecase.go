package usecase

import (
	"context"

	"github.com/google/uuid"

	"simsure/internal/domain/entity"
)

// AlertUsecase owns the alert lifecycle: trigger, challenge, authorize,
// deny, resolve and listing.
type AlertUsecase interface {
	// TriggerAlert creates a new alert for a linked SIM, persists it and
	// notifies the configured channels. Notification failure does not roll
	// the alert back.
	TriggerAlert(ctx context.Context, accountID uuid.UUID, input *TriggerAlertInput) (*entity.Alert, error)

	// IssueChallenge starts an authorization challenge for an alert when the
	// configured policy requires one.
	IssueChallenge(ctx context.Context, accountID, alertID uuid.UUID) (*ChallengeOutput, error)

	// AuthorizeAlert marks the alert as Authorized, gated by the configured
	// challenge policy.
	AuthorizeAlert(ctx context.Context, accountID, alertID uuid.UUID, input *DecisionInput) (*entity.Alert, error)

	// DenyAlert marks the alert as Not Authorized. Never challenge-gated.
	DenyAlert(ctx context.Context, accountID, alertID uuid.UUID, input *DecisionInput) (*entity.Alert, error)

	// ResolveAlert marks the alert as resolved.
	ResolveAlert(ctx context.Context, accountID, alertID uuid.UUID) (*entity.Alert, error)

	// ListAlerts returns the account's alerts, optionally filtered by status.
	ListAlerts(ctx context.Context, accountID uuid.UUID, input *ListAlertsInput) ([]entity.Alert, error)
}

// --- Input DTOs ---

// TriggerAlertInput defines the manual "Trigger Alert" payload.
type TriggerAlertInput struct {
	SIMNumber string `json:"sim_number" validate:"required"`
}

// DecisionInput defines an authorize/deny request.
type DecisionInput struct {
	Actor string `json:"actor" validate:"required"`

	// ChallengeToken and Code complete a previously issued challenge when
	// the authorization policy is "code".
	ChallengeToken string `json:"challenge_token,omitempty"`
	Code           string `json:"code,omitempty"`

	// CaptureRef points at a stored liveness capture when the policy is "face".
	CaptureRef string `json:"capture_ref,omitempty"`
}

// ListAlertsInput defines the optional alert list filter.
type ListAlertsInput struct {
	Status string `json:"status" validate:"omitempty"`
}

// --- Output DTOs ---

// ChallengeOutput is returned when a challenge is issued. The code is
// delivered out of band; it is echoed here only in debug builds.
type ChallengeOutput struct {
	Token     string `json:"token"`
	Policy    string `json:"policy"`
	DebugCode string `json:"debug_code,omitempty"`
}
