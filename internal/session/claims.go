package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoRoleClaim  = errors.New("token has no role claim")
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is what the client can read out of the bearer token without the
// signing key. Verification is the server's job; the client only needs the
// role (for gating before the profile loads) and the expiry.
type Claims struct {
	UserID int64
	Email  string
	Role   string
	Exp    time.Time
}

// DecodeClaims parses the token payload unverified and rejects expired
// tokens. Any failure here means the session must be torn down.
func DecodeClaims(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	claims := &Claims{}

	role, _ := mapClaims["role"].(string)
	if role == "" {
		return nil, ErrNoRoleClaim
	}
	claims.Role = role

	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	// JSON numbers decode as float64
	if id, ok := mapClaims["user_id"].(float64); ok {
		claims.UserID = int64(id)
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("decode token expiry: %w", err)
	}
	if exp != nil {
		claims.Exp = exp.Time
		if time.Now().After(exp.Time) {
			return nil, ErrTokenExpired
		}
	}

	return claims, nil
}
