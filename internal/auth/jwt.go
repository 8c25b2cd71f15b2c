// Package auth verifies the bearer tokens that identify marketplace users.
// Tokens are issued by the marketplace's identity service; this package only
// needs the shared HMAC secrets.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoUser is returned for a valid token that names no user.
var ErrNoUser = errors.New("token carries no user id")

// JWTManager signs and validates JWT tokens used by the API.
type JWTManager struct {
	keys      map[string][]byte // kid -> HMAC secret
	activeKid string            // kid used to sign; empty for single-secret mode
	duration  time.Duration     // how long issued tokens are valid
}

// Claims is the JWT payload.
type Claims struct {
	UserID               string `json:"user_id"` // marketplace user id
	jwt.RegisteredClaims        // ExpiresAt, IssuedAt, etc.
}

// NewJWTManager returns a manager with a single secret and no kid header.
func NewJWTManager(secretKey string, duration time.Duration) *JWTManager {
	return &JWTManager{
		keys:     map[string][]byte{"": []byte(secretKey)},
		duration: duration,
	}
}

// NewJWTManagerFromKeys returns a manager that signs with activeKid and
// accepts tokens signed by any key in keys, so secrets can be rotated
// without logging everyone out.
func NewJWTManagerFromKeys(keys map[string]string, activeKid string, duration time.Duration) *JWTManager {
	m := &JWTManager{
		keys:      make(map[string][]byte, len(keys)),
		activeKid: activeKid,
		duration:  duration,
	}
	for kid, secret := range keys {
		m.keys[kid] = []byte(secret)
	}
	return m
}

// GenerateToken issues a signed token for userID. The API itself never
// logs anyone in; this serves tooling and tests.
func (m *JWTManager) GenerateToken(userID string) (string, time.Time, error) {
	userID = normalize.ID(userID)
	if userID == "" {
		return "", time.Time{}, ErrNoUser
	}
	secret, ok := m.keys[m.activeKid]
	if !ok {
		return "", time.Time{}, fmt.Errorf("no signing key for kid %q", m.activeKid)
	}

	now := time.Now()
	expiresAt := now.Add(m.duration)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	// HS256, with the kid header set when rotating keys
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	if m.activeKid != "" {
		token.Header["kid"] = m.activeKid
	}

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyToken parses and validates a token and returns its claims.
func (m *JWTManager) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// only HMAC; an asymmetric alg here would be a forgery attempt
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		kid, _ := token.Header["kid"].(string)
		secret, ok := m.keys[kid]
		if !ok {
			return nil, fmt.Errorf("unknown key id %q", kid)
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims.UserID = normalize.ID(claims.UserID)
	if claims.UserID == "" {
		return nil, ErrNoUser
	}
	return claims, nil
}
