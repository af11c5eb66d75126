// Package challenge provides the one-time code challenge gating alert
// authorization. The challenge travels as a signed JWT holding a bcrypt
// hash of the code, so no server-side challenge state is kept.
package challenge

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"simsure/config"
	"simsure/internal/domain/service"
)

const (
	defaultChallengeTTL = 5 * time.Minute
	codeDigits          = 6
)

// jwtChallengeService is a concrete implementation of the ChallengeService
// interface using the JWT standard.
type jwtChallengeService struct {
	signingKey []byte
	ttl        time.Duration
}

// NewJWTChallengeService is the constructor for jwtChallengeService.
func NewJWTChallengeService(cfg *config.Config) (service.ChallengeService, error) {
	if cfg.Authorization == nil || cfg.Authorization.SigningKey == "" {
		return nil, errors.New("challenge signing key must be provided")
	}

	ttl := cfg.Authorization.ChallengeTTL
	if ttl == 0 {
		ttl = defaultChallengeTTL
	}

	return &jwtChallengeService{
		signingKey: []byte(cfg.Authorization.SigningKey),
		ttl:        ttl,
	}, nil
}

// Issue binds a fresh one-time code to the alert. The token carries the
// alert ID and a bcrypt hash of the code; the code itself is only returned
// to the caller for out-of-band delivery.
func (s *jwtChallengeService) Issue(_ context.Context, alertID uuid.UUID) (*service.Challenge, error) {
	code, err := randomCode(codeDigits)
	if err != nil {
		return nil, errors.Wrap(err, "generate challenge code")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash challenge code")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  alertID.String(),     // The alert being challenged.
		"hash": string(hash),         // Bcrypt hash of the one-time code.
		"iat":  now.Unix(),           // Issued At
		"exp":  now.Add(s.ttl).Unix(), // Expiration Time
		"type": "alert_challenge",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return nil, errors.Wrap(err, "sign challenge token")
	}

	return &service.Challenge{Token: token, Code: code}, nil
}

// Verify checks a presented token/code pair against the alert. The token
// must be validly signed, unexpired, bound to the same alert, and the code
// must match the embedded hash.
func (s *jwtChallengeService) Verify(_ context.Context, alertID uuid.UUID, tokenString, code string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey, nil
	})
	if err != nil {
		return errors.Wrap(err, "parse challenge token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid challenge token")
	}
	if claims["type"] != "alert_challenge" {
		return errors.New("unexpected token type")
	}
	if claims["sub"] != alertID.String() {
		return errors.New("challenge token is bound to another alert")
	}

	hash, ok := claims["hash"].(string)
	if !ok {
		return errors.New("challenge token has no code hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return errors.New("challenge code mismatch")
	}

	return nil
}

// randomCode generates a zero-padded numeric one-time code.
func randomCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", digits, n), nil
}
