package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/token"
)

type fakeStore struct {
	users map[string]model.User
	err   error
}

func (f *fakeStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	user, ok := f.users[username]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestAuthService(t *testing.T, store CredentialStore) (*AuthService, *token.Codec) {
	t.Helper()

	codec, err := token.NewCodec("auth-service-test-secret")
	require.NoError(t, err)

	svc, err := NewAuthService(codec, store, 30*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	return svc, codec
}

func TestAuthService_LoginSuccess(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: map[string]model.User{
		"admin": {
			Username:     "admin",
			Email:        "admin@example.com",
			Role:         model.RoleAdmin,
			PasswordHash: hashPassword(t, "admin123"),
		},
	}}
	svc, codec := newTestAuthService(t, store)

	pair, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	require.Equal(t, "bearer", pair.TokenType)
	require.Equal(t, int64((30 * time.Minute).Seconds()), pair.ExpiresIn)

	claims, err := codec.Decode(pair.AccessToken, token.TypeAccess)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Subject)
	require.Equal(t, "admin", claims.Role)
}

func TestAuthService_InvalidCredentialsAreUniform(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: map[string]model.User{
		"rh": {
			Username:     "rh",
			Role:         model.RoleRH,
			PasswordHash: hashPassword(t, "rh123"),
		},
	}}
	svc, _ := newTestAuthService(t, store)

	// Unknown username and wrong password must be the same error value so
	// the HTTP layer cannot help but respond identically.
	_, unknownErr := svc.Login(context.Background(), "nobody", "rh123")
	require.ErrorIs(t, unknownErr, model.ErrInvalidCredentials)

	_, wrongPwErr := svc.Login(context.Background(), "rh", "wrong-password")
	require.ErrorIs(t, wrongPwErr, model.ErrInvalidCredentials)

	require.Equal(t, unknownErr, wrongPwErr)
}

func TestAuthService_MalformedStoredHashFailsClosed(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: map[string]model.User{
		"broken": {Username: "broken", Role: model.RoleEmployee, PasswordHash: "not-a-bcrypt-hash"},
	}}
	svc, _ := newTestAuthService(t, store)

	_, err := svc.Login(context.Background(), "broken", "anything")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthService_StoreOutagePassesThrough(t *testing.T) {
	t.Parallel()

	store := &fakeStore{err: model.ErrStoreUnavailable}
	svc, _ := newTestAuthService(t, store)

	_, err := svc.Login(context.Background(), "admin", "admin123")
	require.ErrorIs(t, err, model.ErrStoreUnavailable)
	require.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthService_RefreshTokenOmitsRole(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: map[string]model.User{
		"manager": {
			Username:     "manager",
			Role:         model.RoleManager,
			PasswordHash: hashPassword(t, "manager123"),
		},
	}}
	svc, codec := newTestAuthService(t, store)

	pair, err := svc.Login(context.Background(), "manager", "manager123")
	require.NoError(t, err)

	claims, err := codec.Decode(pair.RefreshToken, token.TypeRefresh)
	require.NoError(t, err)
	require.Equal(t, "manager", claims.Subject)
	require.Empty(t, claims.Role)
}

func TestAuthService_RefreshMintsFreshPairWithCurrentRole(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: map[string]model.User{
		"employee1": {
			Username:     "employee1",
			Role:         model.RoleEmployee,
			PasswordHash: hashPassword(t, "employee123"),
		},
	}}
	svc, codec := newTestAuthService(t, store)

	pair, err := svc.Login(context.Background(), "employee1", "employee123")
	require.NoError(t, err)

	// Role change after mint: the refreshed access token must carry the
	// current role from the store, not the stale one.
	promoted := store.users["employee1"]
	promoted.Role = model.RoleManager
	store.users["employee1"] = promoted

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	claims, err := codec.Decode(fresh.AccessToken, token.TypeAccess)
	require.NoError(t, err)
	require.Equal(t, "manager", claims.Role)
}

func TestAuthService_RefreshRejectsAccessToken(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: map[string]model.User{
		"admin": {
			Username:     "admin",
			Role:         model.RoleAdmin,
			PasswordHash: hashPassword(t, "admin123"),
		},
	}}
	svc, _ := newTestAuthService(t, store)

	pair, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestAuthService_RefreshForDeletedUserIsInvalidToken(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: map[string]model.User{
		"admin": {
			Username:     "admin",
			Role:         model.RoleAdmin,
			PasswordHash: hashPassword(t, "admin123"),
		},
	}}
	svc, _ := newTestAuthService(t, store)

	pair, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	delete(store.users, "admin")

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestAuthService_Identity(t *testing.T) {
	t.Parallel()

	store := &fakeStore{users: map[string]model.User{
		"rh": {
			Username:     "rh",
			Email:        "rh@example.com",
			Role:         model.RoleRH,
			PasswordHash: hashPassword(t, "rh123"),
		},
	}}
	svc, _ := newTestAuthService(t, store)

	identity, err := svc.Identity(context.Background(), "rh")
	require.NoError(t, err)
	require.Equal(t, model.Identity{Username: "rh", Role: model.RoleRH, Email: "rh@example.com"}, identity)

	_, err = svc.Identity(context.Background(), "ghost")
	require.ErrorIs(t, err, model.ErrUnauthorized)
}
