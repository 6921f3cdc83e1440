// Package auth issues and verifies the HS256 access tokens that carry a
// user's identity to the stores.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"daybook/internal/application"
	"daybook/internal/ports"
)

// DefaultTTL is the lifetime of issued tokens
const DefaultTTL = 30 * 24 * time.Hour

// ErrInvalidToken is returned for tokens that fail verification
var ErrInvalidToken = errors.New("invalid token")

// Claims are the access token claims. Subject holds the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator signs and verifies tokens with a shared secret
type Authenticator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewAuthenticator creates an authenticator for secret
func NewAuthenticator(secret, issuer string) (*Authenticator, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is not configured")
	}
	return &Authenticator{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

// Issue returns a signed token for userID
func (a *Authenticator) Issue(userID, email string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := a.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses token and returns its claims
func (a *Authenticator) Verify(token string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}

// TokenIdentity resolves the user from an access token. Without an
// authenticator the subject is read unverified, for remote backends that
// check the signature themselves.
type TokenIdentity struct {
	auth  *Authenticator
	token string
}

// Ensure TokenIdentity implements ports.Identity
var _ ports.Identity = (*TokenIdentity)(nil)

// NewTokenIdentity creates an identity backed by token
func NewTokenIdentity(auth *Authenticator, token string) *TokenIdentity {
	return &TokenIdentity{auth: auth, token: token}
}

// UserID returns the token subject
func (t *TokenIdentity) UserID(ctx context.Context) (string, error) {
	if t.token == "" {
		return "", application.ErrNoIdentity
	}
	if t.auth != nil {
		claims, err := t.auth.Verify(t.token)
		if err != nil {
			return "", err
		}
		return claims.Subject, nil
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(t.token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// Token returns the raw token, for stores that forward it
func (t *TokenIdentity) Token() string {
	return t.token
}

// StaticIdentity is a fixed configured user
type StaticIdentity string

// UserID returns the configured user or ErrNoIdentity when empty
func (s StaticIdentity) UserID(ctx context.Context) (string, error) {
	if s == "" {
		return "", application.ErrNoIdentity
	}
	return string(s), nil
}
