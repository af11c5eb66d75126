// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"simsure/config"
	"simsure/internal/domain/constants"
	"simsure/internal/domain/entity"
	domainerrors "simsure/internal/domain/errors"
	"simsure/internal/domain/repository"
	"simsure/internal/domain/service"
	"simsure/internal/usecase"
)

// alertService implements the AlertUsecase interface. It owns the alert
// lifecycle over the account document store and fans out notifications.
type alertService struct {
	accountRepo  repository.AccountRepository
	notifier     service.Notifier
	push         service.PushService
	publisher    service.EventPublisher
	challengeSvc service.ChallengeService
	faceVerifier service.FaceVerifier
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAlertService is the constructor for alertService. The push service and
// face verifier may be nil when the corresponding features are not configured.
func NewAlertService(
	accountRepo repository.AccountRepository,
	notifier service.Notifier,
	push service.PushService,
	publisher service.EventPublisher,
	challengeSvc service.ChallengeService,
	faceVerifier service.FaceVerifier,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		accountRepo:  accountRepo,
		notifier:     notifier,
		push:         push,
		publisher:    publisher,
		challengeSvc: challengeSvc,
		faceVerifier: faceVerifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// TriggerAlert creates an alert for a linked SIM. The alert is visible to
// readers only after the account write succeeds; notification and event
// publishing run afterwards and never roll the alert back.
func (srv *alertService) TriggerAlert(ctx context.Context, accountID uuid.UUID, input *usecase.TriggerAlertInput) (*entity.Alert, error) {
	if input == nil || input.SIMNumber == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "sim number is required")
	}

	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !account.OwnsNumber(input.SIMNumber) {
		return nil, errors.Wrap(domainerrors.ErrUnknownSIMNumber, "trigger alert")
	}

	profile := account.SimProtection
	if profile == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileMissing, "trigger alert")
	}

	banks := make([]string, 0, len(profile.BankAccounts))
	for _, b := range profile.BankAccounts {
		banks = append(banks, b.BankName)
	}
	kin := make([]string, 0, len(profile.NextOfKin))
	for _, k := range profile.NextOfKin {
		kin = append(kin, fmt.Sprintf("%s <%s>", k.Name, k.Number))
	}

	alert := entity.NewAlert(input.SIMNumber, banks, kin, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, errors.Wrap(domainerrors.ErrVersionConflict, "trigger alert")
		}

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "trigger alert")
	}

	srv.logger.Info("Alert triggered",
		slog.String("accountID", accountID.String()),
		slog.String("alertID", alert.ID.String()),
		slog.String("sim", alert.SIMNumber),
	)

	// Best effort from here on: the alert is already persisted.
	srv.notify(ctx, account, &alert)
	srv.publish(ctx, account, &alert, service.AlertEventCreated, "")

	return &alert, nil
}

// IssueChallenge starts an authorization challenge according to the
// configured policy. For the "code" policy the one-time code is delivered
// out of band to the profile's alert address.
func (srv *alertService) IssueChallenge(ctx context.Context, accountID, alertID uuid.UUID) (*usecase.ChallengeOutput, error) {
	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	alert := account.FindAlert(alertID)
	if alert == nil {
		return nil, errors.Wrap(domainerrors.ErrAlertNotFound, "issue challenge")
	}
	if !alert.Active() {
		return nil, errors.Wrap(domainerrors.ErrAlertTerminal, "issue challenge")
	}

	policy := srv.authorizationPolicy()
	output := &usecase.ChallengeOutput{Policy: policy}

	switch policy {
	case constants.AuthorizationPolicyNone, constants.AuthorizationPolicyFace:
		return output, nil

	case constants.AuthorizationPolicyCode:
		challenge, err := srv.challengeSvc.Issue(ctx, alertID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to issue challenge")
		}
		output.Token = challenge.Token
		if srv.cfg.Env.Debug {
			output.DebugCode = challenge.Code
		}

		srv.deliverCode(ctx, account, alert, challenge.Code)

		return output, nil

	default:
		return nil, errors.Errorf("unknown authorization policy: %s", policy)
	}
}

// AuthorizeAlert marks the alert as Authorized after the policy gate passes.
// Re-authorizing an authorized alert is an idempotent no-op.
func (srv *alertService) AuthorizeAlert(ctx context.Context, accountID, alertID uuid.UUID, input *usecase.DecisionInput) (*entity.Alert, error) {
	if input == nil || input.Actor == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "actor is required")
	}

	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	alert := account.FindAlert(alertID)
	if alert == nil {
		return nil, errors.Wrap(domainerrors.ErrAlertNotFound, "authorize alert")
	}

	// Idempotent: a repeated authorize returns the recorded decision.
	if alert.Status == entity.StatusAuthorized {
		return alert, nil
	}

	if err := srv.passChallengeGate(ctx, accountID, alertID, input); err != nil {
		return nil, err
	}

	if err := alert.Authorize(input.Actor, time.Now().UTC()); err != nil {
		return nil, errors.Wrap(err, "authorize alert")
	}

	if err := srv.persistDecision(ctx, account); err != nil {
		return nil, err
	}

	srv.logger.Info("Alert authorized",
		slog.String("accountID", accountID.String()),
		slog.String("alertID", alertID.String()),
		slog.String("actor", input.Actor),
	)
	srv.publish(ctx, account, alert, service.AlertEventAuthorized, input.Actor)

	return alert, nil
}

// DenyAlert marks the alert as Not Authorized. No challenge is required.
func (srv *alertService) DenyAlert(ctx context.Context, accountID, alertID uuid.UUID, input *usecase.DecisionInput) (*entity.Alert, error) {
	if input == nil || input.Actor == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "actor is required")
	}

	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	alert := account.FindAlert(alertID)
	if alert == nil {
		return nil, errors.Wrap(domainerrors.ErrAlertNotFound, "deny alert")
	}

	if alert.Status == entity.StatusNotAuthorized {
		return alert, nil
	}

	if err := alert.Deny(input.Actor, time.Now().UTC()); err != nil {
		return nil, errors.Wrap(err, "deny alert")
	}

	if err := srv.persistDecision(ctx, account); err != nil {
		return nil, err
	}

	srv.logger.Info("Alert denied",
		slog.String("accountID", accountID.String()),
		slog.String("alertID", alertID.String()),
		slog.String("actor", input.Actor),
	)
	srv.publish(ctx, account, alert, service.AlertEventDenied, input.Actor)

	return alert, nil
}

// ResolveAlert marks the alert as resolved.
func (srv *alertService) ResolveAlert(ctx context.Context, accountID, alertID uuid.UUID) (*entity.Alert, error) {
	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	alert := account.FindAlert(alertID)
	if alert == nil {
		return nil, errors.Wrap(domainerrors.ErrAlertNotFound, "resolve alert")
	}

	if alert.Status == entity.StatusResolved {
		return alert, nil
	}

	if err := alert.Resolve(); err != nil {
		return nil, errors.Wrap(err, "resolve alert")
	}

	if err := srv.persistDecision(ctx, account); err != nil {
		return nil, err
	}

	srv.publish(ctx, account, alert, service.AlertEventResolved, "")

	return alert, nil
}

// ListAlerts returns the account's alerts, optionally filtered by status.
func (srv *alertService) ListAlerts(ctx context.Context, accountID uuid.UUID, input *usecase.ListAlertsInput) ([]entity.Alert, error) {
	account, err := srv.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if input == nil || input.Status == "" {
		return account.Alerts, nil
	}

	filtered := make([]entity.Alert, 0, len(account.Alerts))
	for _, alert := range account.Alerts {
		if string(alert.Status) == input.Status {
			filtered = append(filtered, alert)
		}
	}

	return filtered, nil
}

func (srv *alertService) loadAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "load account")
		}

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "load account")
	}

	return account, nil
}

func (srv *alertService) persistDecision(ctx context.Context, account *entity.Account) error {
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return errors.Wrap(domainerrors.ErrVersionConflict, "persist decision")
		}

		return errors.Wrap(domainerrors.ErrPersistenceFailed.WithDetails(err.Error()), "persist decision")
	}

	return nil
}

func (srv *alertService) authorizationPolicy() string {
	if srv.cfg.Authorization == nil || srv.cfg.Authorization.Policy == "" {
		return constants.AuthorizationPolicyNone
	}

	return srv.cfg.Authorization.Policy
}

func (srv *alertService) passChallengeGate(ctx context.Context, accountID, alertID uuid.UUID, input *usecase.DecisionInput) error {
	switch srv.authorizationPolicy() {
	case constants.AuthorizationPolicyNone:
		return nil

	case constants.AuthorizationPolicyCode:
		if input.ChallengeToken == "" || input.Code == "" {
			return errors.Wrap(domainerrors.ErrChallengeRequired, "authorize alert")
		}
		if err := srv.challengeSvc.Verify(ctx, alertID, input.ChallengeToken, input.Code); err != nil {
			return errors.Wrap(domainerrors.ErrChallengeFailed.WithDetails(err.Error()), "authorize alert")
		}

		return nil

	case constants.AuthorizationPolicyFace:
		if input.CaptureRef == "" {
			return errors.Wrap(domainerrors.ErrChallengeRequired, "authorize alert")
		}
		if err := srv.faceVerifier.VerifyFace(ctx, accountID, input.CaptureRef); err != nil {
			return errors.Wrap(domainerrors.ErrChallengeFailed.WithDetails(err.Error()), "authorize alert")
		}

		return nil

	default:
		return errors.Errorf("unknown authorization policy: %s", srv.authorizationPolicy())
	}
}

// notify fans the freshly created alert out to the configured channels.
// Failures are logged and swallowed: notification is best effort.
func (srv *alertService) notify(ctx context.Context, account *entity.Account, alert *entity.Alert) {
	profile := account.SimProtection

	if srv.notifier != nil && profile.EmailAlerts && profile.AlertEmail != "" {
		notification := &service.AlertNotification{
			SIMNumber:     alert.SIMNumber,
			Status:        string(alert.Status),
			AffectedBanks: alert.AffectedBanks,
			NextOfKin:     alert.NotifiedKin,
			Recipient:     profile.AlertEmail,
			CreatedAt:     alert.CreatedAt,
		}
		if err := srv.notifier.SendAlertNotification(ctx, notification); err != nil {
			srv.logger.Warn("Alert notification failed",
				slog.String("alertID", alert.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	if srv.push != nil && len(account.DeviceTokens) > 0 {
		title := "SIM alert"
		body := fmt.Sprintf("A SIM event was detected on %s", alert.SIMNumber)
		data := map[string]string{"alert_id": alert.ID.String(), "status": string(alert.Status)}
		if _, failed, _, err := srv.push.SendBatchNotification(ctx, account.DeviceTokens, title, body, data); err != nil || failed > 0 {
			srv.logger.Warn("Alert push delivery incomplete",
				slog.String("alertID", alert.ID.String()),
				slog.Int("failed", failed),
				slog.Any("error", err),
			)
		}
	}
}

func (srv *alertService) deliverCode(ctx context.Context, account *entity.Account, alert *entity.Alert, code string) {
	profile := account.SimProtection
	if srv.notifier == nil || profile == nil || profile.AlertEmail == "" {
		srv.logger.Warn("No delivery channel for challenge code",
			slog.String("alertID", alert.ID.String()),
		)

		return
	}

	notification := &service.AlertNotification{
		SIMNumber: alert.SIMNumber,
		Status:    fmt.Sprintf("authorization code: %s", code),
		Recipient: profile.AlertEmail,
		CreatedAt: time.Now().UTC(),
	}
	if err := srv.notifier.SendAlertNotification(ctx, notification); err != nil {
		srv.logger.Warn("Challenge code delivery failed",
			slog.String("alertID", alert.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *alertService) publish(ctx context.Context, account *entity.Account, alert *entity.Alert, eventType, actor string) {
	if srv.publisher == nil {
		return
	}

	event := &service.AlertEvent{
		Type:       eventType,
		AlertID:    alert.ID.String(),
		AccountID:  account.ID.String(),
		SIMNumber:  alert.SIMNumber,
		Status:     string(alert.Status),
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishAlertEvent(ctx, event); err != nil {
		srv.logger.Warn("Alert event publish failed",
			slog.String("alertID", alert.ID.String()),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}
