package auth

import (
	"context"

	"github.com/ticklist/ticklist/internal/result"
)

// Logger is the minimal logging surface the auth layer needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Session is what a successful signup or login yields: a signed token
// the handler stores in the session cookie.
type Session struct {
	Token string `json:"token"`
}

// TokenIssuer is the codec surface the service needs.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

// Service implements signup and login on top of the auth repository and
// the token codec.
type Service struct {
	repo   Repository
	tokens TokenIssuer
	log    Logger
}

// NewService creates the auth service.
func NewService(repo Repository, tokens TokenIssuer, logger Logger) *Service {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Service{repo: repo, tokens: tokens, log: logger}
}

// Signup registers a new account and returns a signed session token.
func (s *Service) Signup(ctx context.Context, username, email, password string) result.Result[Session] {
	if check := s.repo.CheckEmail(ctx, email); check.Failed() {
		return result.Forward[Session](check)
	}

	hash, err := HashPassword(password)
	if err != nil {
		s.log.Error("password hashing failed", "error", err)
		return result.Fail[Session]("Error signing up", result.ServerError)
	}

	created := s.repo.CreateAccount(ctx, username, email, hash)
	if created.Failed() {
		return result.Forward[Session](created)
	}

	token, err := s.tokens.Issue(created.Data)
	if err != nil {
		s.log.Error("token issue failed", "error", err, "user_id", created.Data)
		return result.Fail[Session]("Error signing up", result.ServerError)
	}

	s.log.Info("account created", "user_id", created.Data)
	return result.Ok(Session{Token: token})
}

// Login verifies credentials and returns a signed session token.
func (s *Service) Login(ctx context.Context, email, password string) result.Result[Session] {
	creds := s.repo.Credentials(ctx, email)
	if creds.Failed() {
		return result.Forward[Session](creds)
	}

	if err := ComparePasswordAndHash(password, creds.Data.PasswordHash); err != nil {
		s.log.Debug("login rejected", "user_id", creds.Data.ID)
		return result.Fail[Session]("Invalid email or password", result.InvalidCredentials)
	}

	token, err := s.tokens.Issue(creds.Data.ID)
	if err != nil {
		s.log.Error("token issue failed", "error", err, "user_id", creds.Data.ID)
		return result.Fail[Session]("Error logging in", result.ServerError)
	}

	return result.Ok(Session{Token: token})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
