package challenge

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simsure/config"
)

func testChallengeService(t *testing.T, ttl time.Duration) *jwtChallengeService {
	cfg := &config.Config{
		Authorization: &config.AuthorizationConfig{
			SigningKey:   "test_challenge_signing_key_very_long_for_testing",
			ChallengeTTL: ttl,
		},
	}

	svc, err := NewJWTChallengeService(cfg)
	require.NoError(t, err)

	return svc.(*jwtChallengeService)
}

func TestJWTChallengeService_IssueAndVerify(t *testing.T) {
	svc := testChallengeService(t, time.Minute)
	ctx := context.Background()
	alertID := uuid.New()

	challenge, err := svc.Issue(ctx, alertID)
	require.NoError(t, err)
	assert.NotEmpty(t, challenge.Token)
	assert.Len(t, challenge.Code, 6)

	err = svc.Verify(ctx, alertID, challenge.Token, challenge.Code)
	assert.NoError(t, err)
}

func TestJWTChallengeService_WrongCode(t *testing.T) {
	svc := testChallengeService(t, time.Minute)
	ctx := context.Background()
	alertID := uuid.New()

	challenge, err := svc.Issue(ctx, alertID)
	require.NoError(t, err)

	wrong := "000000"
	if challenge.Code == wrong {
		wrong = "111111"
	}

	err = svc.Verify(ctx, alertID, challenge.Token, wrong)
	assert.Error(t, err)
}

func TestJWTChallengeService_WrongAlert(t *testing.T) {
	svc := testChallengeService(t, time.Minute)
	ctx := context.Background()

	challenge, err := svc.Issue(ctx, uuid.New())
	require.NoError(t, err)

	err = svc.Verify(ctx, uuid.New(), challenge.Token, challenge.Code)
	assert.Error(t, err)
}

func TestJWTChallengeService_ExpiredToken(t *testing.T) {
	svc := testChallengeService(t, -time.Minute)
	ctx := context.Background()
	alertID := uuid.New()

	challenge, err := svc.Issue(ctx, alertID)
	require.NoError(t, err)

	err = svc.Verify(ctx, alertID, challenge.Token, challenge.Code)
	assert.Error(t, err)
}

func TestJWTChallengeService_TamperedToken(t *testing.T) {
	svc := testChallengeService(t, time.Minute)
	ctx := context.Background()
	alertID := uuid.New()

	challenge, err := svc.Issue(ctx, alertID)
	require.NoError(t, err)

	err = svc.Verify(ctx, alertID, challenge.Token+"x", challenge.Code)
	assert.Error(t, err)
}

func TestNewJWTChallengeService_MissingKey(t *testing.T) {
	_, err := NewJWTChallengeService(&config.Config{})
	assert.Error(t, err)
}
