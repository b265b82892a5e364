// Package auth verifies session tokens issued to the embedded admin UI.
package auth

import (
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

// SessionVerifier validates HS256 session tokens signed with the app secret.
type SessionVerifier struct {
	secret   []byte
	audience string
	leeway   time.Duration
}

// NewSessionVerifier creates a verifier. audience is the app API key; when it
// is empty the aud claim is not checked.
func NewSessionVerifier(secret, audience string, leeway time.Duration) *SessionVerifier {
	return &SessionVerifier{
		secret:   []byte(secret),
		audience: audience,
		leeway:   leeway,
	}
}

// sessionClaims are the claims carried by an admin session token.
type sessionClaims struct {
	jwt.RegisteredClaims
	Dest string `json:"dest"`
}

// VerifySessionToken parses and validates a session token and returns the
// normalized shop domain from its dest claim.
func (v *SessionVerifier) VerifySessionToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: parse token: %w", domain.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: invalid token claims", domain.ErrUnauthorized)
	}

	dest, err := url.Parse(claims.Dest)
	if err != nil || dest.Host == "" {
		return "", fmt.Errorf("%w: invalid dest claim %q", domain.ErrUnauthorized, claims.Dest)
	}
	shop, err := domain.NormalizeShopDomain(dest.Host)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	if iss, err := url.Parse(claims.Issuer); err == nil && iss.Host != "" && iss.Host != dest.Host {
		return "", fmt.Errorf("%w: issuer %s does not match dest %s", domain.ErrUnauthorized, iss.Host, dest.Host)
	}

	return shop, nil
}
