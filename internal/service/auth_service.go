package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/token"
)

// CredentialStore is the slice of the user store the session issuer needs.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
}

// AuthService authenticates credentials and mints token pairs. It holds no
// per-session state: a minted pair is self-contained and logout is a
// client-side discard.
type AuthService struct {
	codec      *token.Codec
	store      CredentialStore
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(codec *token.Codec, store CredentialStore, accessTTL time.Duration, refreshTTL time.Duration) (*AuthService, error) {
	if codec == nil {
		return nil, fmt.Errorf("auth service: token codec is required")
	}
	if store == nil {
		return nil, fmt.Errorf("auth service: credential store is required")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, fmt.Errorf("auth service: token TTLs must be positive")
	}

	return &AuthService{
		codec:      codec,
		store:      store,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// Login verifies the credentials and, on success, mints an access token
// carrying {subject, role} and a refresh token carrying only the subject.
// Unknown username and wrong password both resolve to the same
// ErrInvalidCredentials so the two cases cannot be told apart. A store
// outage passes through untouched; it is an operational failure, not an
// authentication outcome.
func (s *AuthService) Login(ctx context.Context, username string, password string) (model.TokenPair, error) {
	user, err := s.store.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, err
	}

	if !verifyPassword(password, user.PasswordHash) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	return s.issuePair(user)
}

// Refresh mints a fresh pair from a valid refresh token. The user record is
// re-resolved so the new access token carries the current role, not the one
// in force when the refresh token was minted. A token whose subject no
// longer exists is reported as invalid, indistinguishable from a tampered
// one.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := s.codec.Decode(refreshToken, token.TypeRefresh)
	if err != nil {
		return model.TokenPair{}, err
	}

	user, err := s.store.FindByUsername(ctx, claims.Subject)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.TokenPair{}, model.ErrInvalidToken
	}
	if err != nil {
		return model.TokenPair{}, err
	}

	return s.issuePair(user)
}

// Identity resolves the subject of an already-authorized request back to
// its stored record. This is data retrieval for the response body; the
// authorization decision was made from the token claims alone.
func (s *AuthService) Identity(ctx context.Context, subject string) (model.Identity, error) {
	user, err := s.store.FindByUsername(ctx, subject)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.Identity{}, model.ErrUnauthorized
	}
	if err != nil {
		return model.Identity{}, err
	}

	return model.Identity{Username: user.Username, Role: user.Role, Email: user.Email}, nil
}

func (s *AuthService) issuePair(user model.User) (model.TokenPair, error) {
	accessToken, err := s.codec.EncodeAccess(user.Username, user.Role, s.accessTTL)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("mint access token: %w", err)
	}

	refreshToken, err := s.codec.EncodeRefresh(user.Username, s.refreshTTL)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("mint refresh token: %w", err)
	}

	return model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// verifyPassword reports whether plain matches the stored bcrypt hash.
// Mismatch and malformed hash both come back false; the caller never needs
// to tell them apart.
func verifyPassword(plain string, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
