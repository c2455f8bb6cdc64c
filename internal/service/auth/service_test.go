package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplekit/leave-backend-go/internal/domain/auth"
	"github.com/peoplekit/leave-backend-go/internal/domain/role"
	"github.com/peoplekit/leave-backend-go/internal/domain/user"
	"github.com/peoplekit/leave-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.users[newUser.ID] = newUser
	return newUser, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]user.User, error) {
	var all []user.User
	for _, u := range r.users {
		all = append(all, u)
	}
	return all, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	return r.GetByID(ctx, req.ID)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) LockForUpdate(ctx context.Context, id string) (user.User, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepo) AdjustBalance(ctx context.Context, id string, deltaDays float64) (user.User, error) {
	return r.GetByID(ctx, id)
}

const (
	testSecret   = "test-secret-key-for-jwt"
	testEmail    = "jane@example.com"
	testPassword = "correct-horse-battery"
)

func newTestService(t *testing.T) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]user.User{
		"user-1": {
			ID:           "user-1",
			Email:        testEmail,
			PasswordHash: string(hash),
			RoleName:     role.NameUser,
		},
	}}
	tokens := jwt.NewJWTService(testSecret, "1h", "24h")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuthService(users, tokens, logger)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Greater(t, tokens.AccessTokenExpiresIn, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    testEmail,
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t)

	// Unknown email and wrong password must be indistinguishable.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_Success(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Empty(t, refreshed.RefreshToken)
}

func TestRefresh_RevokedAfterLogout(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	svc.Logout(ctx, tokens.RefreshToken)

	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_EmptyToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
