package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "simsure/internal/domain/errors"
)

func TestNewAlert_InitialState(t *testing.T) {
	now := time.Now()
	alert := NewAlert("0821234567", []string{"Capitec"}, []string{"Thandi <0829999999>"}, now)

	assert.NotEqual(t, alert.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, StatusNew, alert.Status)
	assert.True(t, alert.Active())
	assert.Equal(t, []string{"Capitec"}, alert.AffectedBanks)
	assert.Empty(t, alert.AuthorizedBy)
	assert.Nil(t, alert.AuthorizedAt)
}

func TestAlert_Authorize(t *testing.T) {
	now := time.Now()
	alert := NewAlert("0821234567", nil, nil, now)

	require.NoError(t, alert.Authorize("Admin", now))
	assert.Equal(t, StatusAuthorized, alert.Status)
	assert.Equal(t, "Admin", alert.AuthorizedBy)
	require.NotNil(t, alert.AuthorizedAt)
	assert.False(t, alert.Active())
}

func TestAlert_Authorize_IdempotentOnAuthorized(t *testing.T) {
	now := time.Now()
	alert := NewAlert("0821234567", nil, nil, now)
	require.NoError(t, alert.Authorize("Admin", now))

	later := now.Add(time.Hour)
	require.NoError(t, alert.Authorize("Someone Else", later))

	// The original decision is preserved.
	assert.Equal(t, "Admin", alert.AuthorizedBy)
	assert.True(t, alert.AuthorizedAt.Equal(now))
}

func TestAlert_DenyAfterAuthorize_Rejected(t *testing.T) {
	now := time.Now()
	alert := NewAlert("0821234567", nil, nil, now)
	require.NoError(t, alert.Authorize("Admin", now))

	err := alert.Deny("Admin", now)
	require.ErrorIs(t, err, domainerrors.ErrAlertTerminal)
	assert.Equal(t, StatusAuthorized, alert.Status)
}

func TestAlert_AuthorizeAfterDeny_Rejected(t *testing.T) {
	now := time.Now()
	alert := NewAlert("0821234567", nil, nil, now)
	require.NoError(t, alert.Deny("Admin", now))
	assert.Equal(t, StatusNotAuthorized, alert.Status)

	require.ErrorIs(t, alert.Authorize("Admin", now), domainerrors.ErrAlertTerminal)
	assert.Equal(t, StatusNotAuthorized, alert.Status)
}

func TestAlert_Resolve(t *testing.T) {
	now := time.Now()
	alert := NewAlert("0821234567", nil, nil, now)

	require.NoError(t, alert.Resolve())
	assert.Equal(t, StatusResolved, alert.Status)

	// Resolving again is a no-op.
	require.NoError(t, alert.Resolve())

	// Authorizing a resolved alert is rejected.
	require.ErrorIs(t, alert.Authorize("Admin", now), domainerrors.ErrAlertTerminal)
}

func TestAlert_ResolveAfterDecision_Rejected(t *testing.T) {
	now := time.Now()
	alert := NewAlert("0821234567", nil, nil, now)
	require.NoError(t, alert.Deny("Admin", now))

	require.ErrorIs(t, alert.Resolve(), domainerrors.ErrAlertTerminal)
}

func TestAlertStatus_LegacyPendingIsActive(t *testing.T) {
	alert := Alert{Status: StatusPending}
	assert.True(t, alert.Active())

	now := time.Now()
	require.NoError(t, alert.Authorize("Admin", now))
	assert.Equal(t, StatusAuthorized, alert.Status)
}
