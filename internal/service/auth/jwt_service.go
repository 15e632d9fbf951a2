// Package auth provides the session token service: issuing and verifying
// the signed bearer tokens that carry a caller's user identifier.
package auth

import (
	"context"
)

// JWTService defines operations for managing session tokens.
type JWTService interface {
	// GenerateToken creates a signed token whose only claim is the user's
	// identifier. Tokens carry no expiry; there is no revocation.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies the token's signature and extracts the
	// claims. Returns ErrInvalidToken if the token is malformed or the
	// signature does not match.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded content of a session token.
type Claims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID int64 `json:"id"`
}
