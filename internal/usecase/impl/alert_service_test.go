package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"simsure/config"
	"simsure/internal/domain/constants"
	"simsure/internal/domain/entity"
	domainerrors "simsure/internal/domain/errors"
	"simsure/internal/domain/service"
	mockRepo "simsure/internal/mocks/repository"
	mockSvc "simsure/internal/mocks/service"
	"simsure/internal/usecase"
)

// alertServiceFixtures holds all test dependencies for alert service tests.
type alertServiceFixtures struct {
	service      usecase.AlertUsecase
	accountRepo  *mockRepo.MockAccountRepository
	notifier     *mockSvc.MockNotifier
	push         *mockSvc.MockPushService
	publisher    *mockSvc.MockEventPublisher
	challengeSvc *mockSvc.MockChallengeService
	faceVerifier *mockSvc.MockFaceVerifier
	cfg          *config.Config
}

func createTestAlertService(t *testing.T, policy string) alertServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	notifier := mockSvc.NewMockNotifier(t)
	push := mockSvc.NewMockPushService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	challengeSvc := mockSvc.NewMockChallengeService(t)
	faceVerifier := mockSvc.NewMockFaceVerifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Authorization: &config.AuthorizationConfig{Policy: policy},
	}

	svc := NewAlertService(
		accountRepo,
		notifier,
		push,
		publisher,
		challengeSvc,
		faceVerifier,
		cfg,
		logger,
	)

	return alertServiceFixtures{
		service:      svc,
		accountRepo:  accountRepo,
		notifier:     notifier,
		push:         push,
		publisher:    publisher,
		challengeSvc: challengeSvc,
		faceVerifier: faceVerifier,
		cfg:          cfg,
	}
}

func protectedAccount() *entity.Account {
	return &entity.Account{
		ID:          uuid.New(),
		FullName:    "Thandi Mokoena",
		Email:       "thandi@example.com",
		PhoneNumber: "0821234567",
		Language:    "en",
		SimProtection: &entity.SimProtectionProfile{
			LinkedNumber: "0821234567",
			IDNumber:     "8001015009087",
			EmailAlerts:  true,
			AlertEmail:   "thandi@example.com",
			NextOfKin: []entity.NextOfKin{
				{ID: uuid.New(), Name: "Sipho Mokoena", Number: "0837654321"},
			},
			BankAccounts: []entity.BankAccount{
				{ID: uuid.New(), BankName: "FNB", AccountNumber: "62001234567"},
			},
			CoverageAmount: 350000,
			Active:         true,
		},
		Version:   3,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestAlertService_TriggerAlert_Success(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)
	fx.notifier.EXPECT().
		SendAlertNotification(ctx, mock.AnythingOfType("*service.AlertNotification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	alert, err := fx.service.TriggerAlert(ctx, account.ID, &usecase.TriggerAlertInput{
		SIMNumber: "0821234567",
	})

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, entity.StatusNew, alert.Status)
	assert.Equal(t, "0821234567", alert.SIMNumber)
	assert.Equal(t, []string{"FNB"}, alert.AffectedBanks)
	assert.Equal(t, []string{"Sipho Mokoena <0837654321>"}, alert.NotifiedKin)
	assert.NotEqual(t, uuid.Nil, alert.ID)
	assert.Len(t, account.Alerts, 1)
}

func TestAlertService_TriggerAlert_IncrementsActiveCount(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()
	before := entity.ComputeSummary(account)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.notifier.EXPECT().SendAlertNotification(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	_, err := fx.service.TriggerAlert(ctx, account.ID, &usecase.TriggerAlertInput{
		SIMNumber: "0821234567",
	})

	require.NoError(t, err)
	after := entity.ComputeSummary(account)
	assert.Equal(t, before.ActiveAlertCount+1, after.ActiveAlertCount)
}

func TestAlertService_TriggerAlert_UnknownSIM(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	alert, err := fx.service.TriggerAlert(ctx, account.ID, &usecase.TriggerAlertInput{
		SIMNumber: "0849999999",
	})

	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownSIMNumber)
	assert.Empty(t, account.Alerts)
}

func TestAlertService_TriggerAlert_NotificationFailureDoesNotRollBack(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.notifier.EXPECT().
		SendAlertNotification(ctx, mock.Anything).
		Return(assert.AnError)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	alert, err := fx.service.TriggerAlert(ctx, account.ID, &usecase.TriggerAlertInput{
		SIMNumber: "0821234567",
	})

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Len(t, account.Alerts, 1)
}

func TestAlertService_AuthorizeAlert_RecordsActor(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", []string{"FNB"}, nil, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	decided, err := fx.service.AuthorizeAlert(ctx, account.ID, alert.ID, &usecase.DecisionInput{
		Actor: "Admin",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAuthorized, decided.Status)
	assert.Equal(t, "Admin", decided.AuthorizedBy)
	require.NotNil(t, decided.AuthorizedAt)

	summary := entity.ComputeSummary(account)
	assert.Equal(t, 0, summary.ActiveAlertCount)
}

func TestAlertService_AuthorizeAlert_RepeatIsIdempotent(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()
	decidedAt := time.Now().UTC().Add(-time.Hour)
	alert := entity.NewAlert("0821234567", nil, nil, decidedAt)
	alert.Status = entity.StatusAuthorized
	alert.AuthorizedBy = "Admin"
	alert.AuthorizedAt = &decidedAt
	account.Alerts = append(account.Alerts, alert)

	// No Update expectation: a repeated authorize must not write.
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	decided, err := fx.service.AuthorizeAlert(ctx, account.ID, alert.ID, &usecase.DecisionInput{
		Actor: "Someone Else",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAuthorized, decided.Status)
	assert.Equal(t, "Admin", decided.AuthorizedBy)
	assert.Equal(t, decidedAt, *decided.AuthorizedAt)
}

func TestAlertService_DenyAfterAuthorize_Rejected(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()
	decidedAt := time.Now().UTC()
	alert := entity.NewAlert("0821234567", nil, nil, decidedAt)
	alert.Status = entity.StatusAuthorized
	alert.AuthorizedBy = "Admin"
	alert.AuthorizedAt = &decidedAt
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	decided, err := fx.service.DenyAlert(ctx, account.ID, alert.ID, &usecase.DecisionInput{
		Actor: "Reviewer Two",
	})

	require.Error(t, err)
	assert.Nil(t, decided)
	assert.ErrorIs(t, err, domainerrors.ErrAlertTerminal)
	assert.Equal(t, entity.StatusAuthorized, account.Alerts[0].Status)
	assert.Equal(t, "Admin", account.Alerts[0].AuthorizedBy)
}

func TestAlertService_DenyAlert_Success(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyCode)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	// Deny never requires a challenge, even under the code policy.
	decided, err := fx.service.DenyAlert(ctx, account.ID, alert.ID, &usecase.DecisionInput{
		Actor: "Thandi Mokoena",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusNotAuthorized, decided.Status)
	assert.Equal(t, "Thandi Mokoena", decided.AuthorizedBy)
}

func TestAlertService_AuthorizeAlert_CodePolicyRequiresChallenge(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyCode)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	decided, err := fx.service.AuthorizeAlert(ctx, account.ID, alert.ID, &usecase.DecisionInput{
		Actor: "Admin",
	})

	require.Error(t, err)
	assert.Nil(t, decided)
	assert.ErrorIs(t, err, domainerrors.ErrChallengeRequired)
	assert.Equal(t, entity.StatusNew, account.Alerts[0].Status)
}

func TestAlertService_AuthorizeAlert_CodePolicySuccess(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyCode)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.challengeSvc.EXPECT().Verify(ctx, alert.ID, "token-abc", "123456").Return(nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	decided, err := fx.service.AuthorizeAlert(ctx, account.ID, alert.ID, &usecase.DecisionInput{
		Actor:          "Admin",
		ChallengeToken: "token-abc",
		Code:           "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAuthorized, decided.Status)
}

func TestAlertService_AuthorizeAlert_CodePolicyBadCode(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyCode)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.challengeSvc.EXPECT().
		Verify(ctx, alert.ID, "token-abc", "000000").
		Return(assert.AnError)

	decided, err := fx.service.AuthorizeAlert(ctx, account.ID, alert.ID, &usecase.DecisionInput{
		Actor:          "Admin",
		ChallengeToken: "token-abc",
		Code:           "000000",
	})

	require.Error(t, err)
	assert.Nil(t, decided)
	assert.ErrorIs(t, err, domainerrors.ErrChallengeFailed)
	assert.Equal(t, entity.StatusNew, account.Alerts[0].Status)
}

func TestAlertService_AuthorizeAlert_FacePolicy(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyFace)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.faceVerifier.EXPECT().VerifyFace(ctx, account.ID, "captures/abc").Return(nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	decided, err := fx.service.AuthorizeAlert(ctx, account.ID, alert.ID, &usecase.DecisionInput{
		Actor:      "Thandi Mokoena",
		CaptureRef: "captures/abc",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAuthorized, decided.Status)
}

func TestAlertService_IssueChallenge_CodePolicy(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyCode)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.challengeSvc.EXPECT().
		Issue(ctx, alert.ID).
		Return(&service.Challenge{Token: "token-abc", Code: "123456"}, nil)
	fx.notifier.EXPECT().
		SendAlertNotification(ctx, mock.AnythingOfType("*service.AlertNotification")).
		Return(nil)

	output, err := fx.service.IssueChallenge(ctx, account.ID, alert.ID)

	require.NoError(t, err)
	assert.Equal(t, constants.AuthorizationPolicyCode, output.Policy)
	assert.Equal(t, "token-abc", output.Token)
	assert.Empty(t, output.DebugCode)
}

func TestAlertService_IssueChallenge_NonePolicySkips(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	output, err := fx.service.IssueChallenge(ctx, account.ID, alert.ID)

	require.NoError(t, err)
	assert.Equal(t, constants.AuthorizationPolicyNone, output.Policy)
	assert.Empty(t, output.Token)
}

func TestAlertService_IssueChallenge_TerminalAlert(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyCode)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	alert.Status = entity.StatusResolved
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	output, err := fx.service.IssueChallenge(ctx, account.ID, alert.ID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAlertTerminal)
}

func TestAlertService_ResolveAlert_Success(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()
	alert := entity.NewAlert("0821234567", nil, nil, time.Now().UTC())
	account.Alerts = append(account.Alerts, alert)

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)

	resolved, err := fx.service.ResolveAlert(ctx, account.ID, alert.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusResolved, resolved.Status)
}

func TestAlertService_ListAlerts_StatusFilter(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()
	now := time.Now().UTC()

	open := entity.NewAlert("0821234567", nil, nil, now)
	authorized := entity.NewAlert("0821234567", nil, nil, now)
	authorized.Status = entity.StatusAuthorized
	legacy := entity.NewAlert("0821234567", nil, nil, now)
	legacy.Status = entity.StatusPending
	account.Alerts = []entity.Alert{open, authorized, legacy}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil).Times(3)

	all, err := fx.service.ListAlerts(ctx, account.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyAuthorized, err := fx.service.ListAlerts(ctx, account.ID, &usecase.ListAlertsInput{Status: "Authorized"})
	require.NoError(t, err)
	require.Len(t, onlyAuthorized, 1)
	assert.Equal(t, authorized.ID, onlyAuthorized[0].ID)

	onlyLegacy, err := fx.service.ListAlerts(ctx, account.ID, &usecase.ListAlertsInput{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, onlyLegacy, 1)
	assert.Equal(t, legacy.ID, onlyLegacy[0].ID)
}

func TestAlertService_AuthorizeAlert_AlertNotFound(t *testing.T) {
	fx := createTestAlertService(t, constants.AuthorizationPolicyNone)

	ctx := context.Background()
	account := protectedAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	decided, err := fx.service.AuthorizeAlert(ctx, account.ID, uuid.New(), &usecase.DecisionInput{
		Actor: "Admin",
	})

	require.Error(t, err)
	assert.Nil(t, decided)
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}
