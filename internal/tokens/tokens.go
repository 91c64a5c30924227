// Package tokens issues and verifies the signed access tokens that carry a
// resolved identity between requests. A token is bound to its session via
// the sid claim, so destroying the session on logout invalidates every
// outstanding token for it.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the decoded payload of a portal access token.
type AccessClaims struct {
	Sub       string
	Email     string
	Role      models.Role
	SessionID string
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Generate creates a signed HS256 access token for the user bound to the
// given session id.
func (m *Manager) Generate(u models.User, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  string(u.Role),
		"sid":   sessionID,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString(m.secret)
}

// Parse verifies signature and expiry and returns the decoded claims.
func (m *Manager) Parse(raw string) (*AccessClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := mc["sub"].(string)
	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)
	sid, _ := mc["sid"].(string)
	if sub == "" || sid == "" {
		return nil, ErrInvalidToken
	}
	return &AccessClaims{Sub: sub, Email: email, Role: models.Role(role), SessionID: sid}, nil
}
