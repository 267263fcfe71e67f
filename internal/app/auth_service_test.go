package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/itseyans/ruric/internal/model"
	"github.com/itseyans/ruric/internal/pkg/jwtutil"
)

const testSecret = "test-secret"

func newTestAuth(users *memUsers) *AuthService {
	return NewAuthService(users, testSecret, time.Hour)
}

func TestSignupHashesPasswordAndDefaultsRole(t *testing.T) {
	users := newMemUsers()
	svc := newTestAuth(users)

	user, err := svc.Signup(SignupInput{
		FullName: "Cara Client",
		Email:    "Cara@Example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "cara@example.com", user.Email)
	assert.Equal(t, model.RoleClient, user.Role)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	users := newMemUsers(model.User{ID: 1, Email: "taken@example.com", Role: model.RoleClient})
	svc := newTestAuth(users)

	_, err := svc.Signup(SignupInput{
		FullName: "Someone Else",
		Email:    "taken@example.com",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestSignupValidatesRequiredFields(t *testing.T) {
	svc := newTestAuth(newMemUsers())

	_, err := svc.Signup(SignupInput{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	users := newMemUsers(model.User{
		ID:           5,
		Email:        "cara@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleClient,
	})
	svc := newTestAuth(users)

	result, err := svc.Login(LoginInput{Email: "cara@example.com", Password: "secret-password"})
	require.NoError(t, err)

	claims, err := jwtutil.ParseToken(testSecret, result.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(5), claims.UserID)
	assert.Equal(t, model.RoleClient, claims.Role)
}

func TestLoginAcceptsLegacyPlaintextRow(t *testing.T) {
	users := newMemUsers(model.User{
		ID:           6,
		Email:        "old@example.com",
		PasswordHash: "plaintext-password",
		Role:         model.RoleEmployee,
	})
	svc := newTestAuth(users)

	_, err := svc.Login(LoginInput{Email: "old@example.com", Password: "plaintext-password"})
	assert.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "old@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoginWrongPasswordOrUnknownUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	require.NoError(t, err)
	users := newMemUsers(model.User{ID: 7, Email: "x@example.com", PasswordHash: string(hash)})
	svc := newTestAuth(users)

	_, err = svc.Login(LoginInput{Email: "x@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Login(LoginInput{Email: "nobody@example.com", Password: "right"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
