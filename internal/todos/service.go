package todos

import (
	"context"

	"github.com/ticklist/ticklist/internal/result"
)

// Logger is the minimal logging surface the todos layer needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Service implements the todo operations for the authenticated user.
type Service struct {
	repo Repository
	log  Logger
}

// NewService creates the todos service.
func NewService(repo Repository, logger Logger) *Service {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Service{repo: repo, log: logger}
}

// List returns the user's todos.
func (s *Service) List(ctx context.Context, userID string) result.Result[[]Todo] {
	return s.repo.List(ctx, userID)
}

// Create adds a todo for the user.
func (s *Service) Create(ctx context.Context, userID, title string) result.Result[Todo] {
	res := s.repo.Create(ctx, userID, title)
	if res.Success {
		s.log.Debug("todo created", "todo_id", res.Data.ID, "user_id", userID)
	}
	return res
}

// Update applies a partial update. A patch with no fields is rejected
// before touching storage.
func (s *Service) Update(ctx context.Context, userID, id string, patch Patch) result.Result[result.None] {
	if patch.Empty() {
		return result.Fail[result.None]("No fields to update", result.MissingRequiredField)
	}
	return s.repo.Update(ctx, userID, id, patch)
}

// Delete removes the user's todo.
func (s *Service) Delete(ctx context.Context, userID, id string) result.Result[result.None] {
	return s.repo.Delete(ctx, userID, id)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
