package generation

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSigner mints the bearer token the generation service expects: an
// HS256 JWT carrying the learner's identity and both difficulty levels.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenSigner creates a signer for upstream bearer tokens. The TTL must
// outlive the generation call itself, which can run for minutes.
func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	return &TokenSigner{secret: []byte(secret), ttl: ttl}
}

type learnerClaims struct {
	UserID        string `json:"userId"`
	Role          string `json:"role"`
	InferredLevel string `json:"inferredLevel"`
	AssignedLevel string `json:"assignedLevel"`
	jwt.RegisteredClaims
}

// Sign mints a token for one learner. The upstream only serves the student
// role, so that claim is fixed here.
func (s *TokenSigner) Sign(learner Learner) (string, error) {
	now := time.Now()
	claims := learnerClaims{
		UserID:        learner.ID,
		Role:          "student",
		InferredLevel: learner.InferredLevel,
		AssignedLevel: learner.AssignedLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign upstream token: %w", err)
	}
	return token, nil
}
