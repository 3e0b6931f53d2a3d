package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ticklist/ticklist/internal/auth"
	"github.com/ticklist/ticklist/internal/result"
)

// MockRepository implements auth.Repository for testing.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CheckEmail(ctx context.Context, email string) result.Result[result.None] {
	args := m.Called(ctx, email)
	return args.Get(0).(result.Result[result.None])
}

func (m *MockRepository) CreateAccount(ctx context.Context, username, email, passwordHash string) result.Result[string] {
	args := m.Called(ctx, username, email, passwordHash)
	return args.Get(0).(result.Result[string])
}

func (m *MockRepository) Credentials(ctx context.Context, email string) result.Result[auth.Credentials] {
	args := m.Called(ctx, email)
	return args.Get(0).(result.Result[auth.Credentials])
}

// MockIssuer implements auth.TokenIssuer for testing.
type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(subjectID string) (string, error) {
	args := m.Called(subjectID)
	return args.String(0), args.Error(1)
}

func TestServiceSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and issues token", func(t *testing.T) {
		repo := &MockRepository{}
		issuer := &MockIssuer{}
		svc := auth.NewService(repo, issuer, nil)

		repo.On("CheckEmail", ctx, "new@example.com").
			Return(result.Ok(result.None{}))
		repo.On("CreateAccount", ctx, "newuser", "new@example.com", mock.AnythingOfType("string")).
			Return(result.Ok("user-123"))
		issuer.On("Issue", "user-123").Return("signed-token", nil)

		res := svc.Signup(ctx, "newuser", "new@example.com", "password123")

		require.True(t, res.Success)
		assert.Equal(t, "signed-token", res.Data.Token)
		repo.AssertExpectations(t)
		issuer.AssertExpectations(t)
	})

	t.Run("taken email fails with EMAIL_EXISTS", func(t *testing.T) {
		repo := &MockRepository{}
		issuer := &MockIssuer{}
		svc := auth.NewService(repo, issuer, nil)

		repo.On("CheckEmail", ctx, "taken@example.com").
			Return(result.Fail[result.None]("Email already exists", result.EmailExists))

		res := svc.Signup(ctx, "newuser", "taken@example.com", "password123")

		require.True(t, res.Failed())
		assert.Equal(t, result.EmailExists, res.Code)
		repo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("insert failure is forwarded", func(t *testing.T) {
		repo := &MockRepository{}
		issuer := &MockIssuer{}
		svc := auth.NewService(repo, issuer, nil)

		repo.On("CheckEmail", ctx, "new@example.com").
			Return(result.Ok(result.None{}))
		repo.On("CreateAccount", ctx, "newuser", "new@example.com", mock.AnythingOfType("string")).
			Return(result.Fail[string]("Error signing up", result.ServerError))

		res := svc.Signup(ctx, "newuser", "new@example.com", "password123")

		require.True(t, res.Failed())
		assert.Equal(t, result.ServerError, res.Code)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("token issue failure degrades to server error", func(t *testing.T) {
		repo := &MockRepository{}
		issuer := &MockIssuer{}
		svc := auth.NewService(repo, issuer, nil)

		repo.On("CheckEmail", ctx, "new@example.com").
			Return(result.Ok(result.None{}))
		repo.On("CreateAccount", ctx, "newuser", "new@example.com", mock.AnythingOfType("string")).
			Return(result.Ok("user-123"))
		issuer.On("Issue", "user-123").Return("", assert.AnError)

		res := svc.Signup(ctx, "newuser", "new@example.com", "password123")

		require.True(t, res.Failed())
		assert.Equal(t, result.ServerError, res.Code)
	})
}

func TestServiceLogin(t *testing.T) {
	ctx := context.Background()

	password := "password123"
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	creds := auth.Credentials{ID: "user-123", PasswordHash: hash}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		repo := &MockRepository{}
		issuer := &MockIssuer{}
		svc := auth.NewService(repo, issuer, nil)

		repo.On("Credentials", ctx, "user@example.com").
			Return(result.Ok(creds))
		issuer.On("Issue", "user-123").Return("signed-token", nil)

		res := svc.Login(ctx, "user@example.com", password)

		require.True(t, res.Success)
		assert.Equal(t, "signed-token", res.Data.Token)
	})

	t.Run("unknown email fails with INVALID_CREDENTIALS", func(t *testing.T) {
		repo := &MockRepository{}
		issuer := &MockIssuer{}
		svc := auth.NewService(repo, issuer, nil)

		repo.On("Credentials", ctx, "ghost@example.com").
			Return(result.Fail[auth.Credentials]("Invalid email or password", result.InvalidCredentials))

		res := svc.Login(ctx, "ghost@example.com", password)

		require.True(t, res.Failed())
		assert.Equal(t, result.InvalidCredentials, res.Code)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("wrong password fails with INVALID_CREDENTIALS", func(t *testing.T) {
		repo := &MockRepository{}
		issuer := &MockIssuer{}
		svc := auth.NewService(repo, issuer, nil)

		repo.On("Credentials", ctx, "user@example.com").
			Return(result.Ok(creds))

		res := svc.Login(ctx, "user@example.com", "not-the-password")

		require.True(t, res.Failed())
		assert.Equal(t, result.InvalidCredentials, res.Code)
		assert.Equal(t, "Invalid email or password", res.Message)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})
}

func TestSignupRequestValidation(t *testing.T) {
	valid := auth.SignupRequest{Username: "newuser", Email: "new@example.com", Password: "password123"}

	tests := []struct {
		name    string
		mutate  func(*auth.SignupRequest)
		wantErr bool
	}{
		{"valid payload", func(r *auth.SignupRequest) {}, false},
		{"missing username", func(r *auth.SignupRequest) { r.Username = "" }, true},
		{"short username", func(r *auth.SignupRequest) { r.Username = "ab" }, true},
		{"long username", func(r *auth.SignupRequest) { r.Username = "abcdefghijklmnopqrstu" }, true},
		{"bad email", func(r *auth.SignupRequest) { r.Email = "not-an-email" }, true},
		{"short password", func(r *auth.SignupRequest) { r.Password = "12345" }, true},
		{"long password", func(r *auth.SignupRequest) { r.Password = "123456789012345678901" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequestValidation(t *testing.T) {
	assert.NoError(t, auth.LoginRequest{Email: "user@example.com", Password: "password123"}.Validate())
	assert.Error(t, auth.LoginRequest{Email: "", Password: "password123"}.Validate())
	assert.Error(t, auth.LoginRequest{Email: "user@example.com", Password: ""}.Validate())
}
