package users

import (
	"context"

	"github.com/ticklist/ticklist/internal/result"
)

// Logger is the minimal logging surface the users layer needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Service implements the account self-management operations. The
// subject id always comes from the verified session, never from the
// request body or URL, so a user can only ever touch their own account.
type Service struct {
	repo Repository
	log  Logger
}

// NewService creates the users service.
func NewService(repo Repository, logger Logger) *Service {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Service{repo: repo, log: logger}
}

// Get returns the caller's profile.
func (s *Service) Get(ctx context.Context, userID string) result.Result[Profile] {
	return s.repo.Get(ctx, userID)
}

// UpdateUsername changes the caller's username.
func (s *Service) UpdateUsername(ctx context.Context, userID, username string) result.Result[Profile] {
	res := s.repo.UpdateUsername(ctx, userID, username)
	if res.Success {
		s.log.Info("username updated", "user_id", userID)
	}
	return res
}

// Delete removes the caller's account.
func (s *Service) Delete(ctx context.Context, userID string) result.Result[result.None] {
	res := s.repo.Delete(ctx, userID)
	if res.Success {
		s.log.Info("account deleted", "user_id", userID)
	}
	return res
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
