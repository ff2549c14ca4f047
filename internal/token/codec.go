package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hr-dashboard-api/internal/model"
)

// Type tags a token with its intended use so an access token can never be
// replayed against the refresh endpoint and vice versa.
type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

// Claims is the signed payload. Role is present on access tokens only;
// refresh tokens carry nothing but the subject, so possession of one never
// authorizes a role-gated action.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
	Type Type   `json:"typ"`
}

// Codec signs and verifies HS256 tokens with a single injected secret. The
// secret is fixed at construction; there is no way to rotate it on a live
// codec.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) (*Codec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("token codec: signing secret is required")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// EncodeAccess mints a short-lived token carrying subject and role.
func (c *Codec) EncodeAccess(subject string, role model.Role, ttl time.Duration) (string, error) {
	return c.encode(Claims{Role: role.String(), Type: TypeAccess}, subject, ttl)
}

// EncodeRefresh mints a long-lived token carrying only the subject.
func (c *Codec) EncodeRefresh(subject string, ttl time.Duration) (string, error) {
	return c.encode(Claims{Type: TypeRefresh}, subject, ttl)
}

func (c *Codec) encode(claims Claims, subject string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", fmt.Errorf("token codec: subject is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token codec: ttl must be positive")
	}

	now := time.Now().UTC()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies and unpacks a token of the expected type. The signature is
// checked before any claim is trusted (the parser rejects a bad signature
// before claim validation runs), then expiry. Every failure collapses to
// model.ErrInvalidToken; the underlying cause is wrapped for internal logs
// but must never reach a client.
func (c *Codec) Decode(tokenString string, expected Type) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, model.ErrInvalidToken
	}
	if claims.Type != expected {
		return nil, fmt.Errorf("%w: unexpected token type %q", model.ErrInvalidToken, claims.Type)
	}

	return claims, nil
}
