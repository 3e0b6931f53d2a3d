package todos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/ticklist/ticklist/internal/model"
	"github.com/ticklist/ticklist/internal/result"
)

// Todo is the wire view of a todo entry.
type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Patch carries the fields of a partial update. Nil means leave alone.
type Patch struct {
	Title     *string
	Completed *bool
}

// Empty reports whether the patch would change nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Completed == nil
}

// Repository is the persistence surface the todos service depends on.
// Every operation is scoped to the owning user; a todo belonging to
// someone else behaves exactly like a todo that does not exist.
type Repository interface {
	List(ctx context.Context, userID string) result.Result[[]Todo]
	Create(ctx context.Context, userID, title string) result.Result[Todo]
	Update(ctx context.Context, userID, id string, patch Patch) result.Result[result.None]
	Delete(ctx context.Context, userID, id string) result.Result[result.None]
}

type bunRepository struct {
	db  *bun.DB
	log Logger
}

// NewRepository creates the bun-backed todos repository.
func NewRepository(db *bun.DB, logger Logger) Repository {
	if logger == nil {
		logger = nopLogger{}
	}
	return &bunRepository{db: db, log: logger}
}

// List returns the user's todos, oldest first.
func (r *bunRepository) List(ctx context.Context, userID string) result.Result[[]Todo] {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return result.Fail[[]Todo]("User not found", result.UserNotFound)
	}

	var records []model.Todo
	err = r.db.NewSelect().
		Model(&records).
		Where("user_id = ?", uid).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		r.log.Error("todo list failed", "error", err, "user_id", userID)
		return result.Fail[[]Todo]("Error fetching todos", result.ServerError)
	}

	items := make([]Todo, 0, len(records))
	for i := range records {
		items = append(items, todoOf(&records[i]))
	}

	return result.Ok(items)
}

// Create inserts a new todo for the user and returns it.
func (r *bunRepository) Create(ctx context.Context, userID, title string) result.Result[Todo] {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return result.Fail[Todo]("User not found", result.UserNotFound)
	}

	now := time.Now()
	record := &model.Todo{
		ID:        uuid.New(),
		UserID:    uid,
		Title:     title,
		CreatedAt: &now,
	}

	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		r.log.Error("todo insert failed", "error", err, "user_id", userID)
		return result.Fail[Todo]("Error creating todo", result.ServerError)
	}

	return result.Ok(todoOf(record))
}

// Update applies a partial update to the user's todo.
func (r *bunRepository) Update(ctx context.Context, userID, id string, patch Patch) result.Result[result.None] {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return result.Fail[result.None]("User not found", result.UserNotFound)
	}
	tid, err := uuid.Parse(id)
	if err != nil {
		return result.Fail[result.None]("Todo not found", result.NotFound)
	}

	q := r.db.NewUpdate().
		Model((*model.Todo)(nil)).
		Where("id = ?", tid).
		Where("user_id = ?", uid)

	if patch.Title != nil {
		q = q.Set("title = ?", *patch.Title)
	}
	if patch.Completed != nil {
		q = q.Set("completed = ?", *patch.Completed)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		r.log.Error("todo update failed", "error", err, "todo_id", id, "user_id", userID)
		return result.Fail[result.None]("Error updating todo", result.ServerError)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return result.Fail[result.None]("Todo not found", result.NotFound)
	}

	return result.Ok(result.None{})
}

// Delete removes the user's todo.
func (r *bunRepository) Delete(ctx context.Context, userID, id string) result.Result[result.None] {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return result.Fail[result.None]("User not found", result.UserNotFound)
	}
	tid, err := uuid.Parse(id)
	if err != nil {
		return result.Fail[result.None]("Todo not found", result.NotFound)
	}

	res, err := r.db.NewDelete().
		Model((*model.Todo)(nil)).
		Where("id = ?", tid).
		Where("user_id = ?", uid).
		Exec(ctx)
	if err != nil {
		r.log.Error("todo delete failed", "error", err, "todo_id", id, "user_id", userID)
		return result.Fail[result.None]("Error deleting todo", result.ServerError)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return result.Fail[result.None]("Todo not found", result.NotFound)
	}

	return result.Ok(result.None{})
}

func todoOf(t *model.Todo) Todo {
	created := time.Time{}
	if t.CreatedAt != nil {
		created = *t.CreatedAt
	}
	return Todo{
		ID:        t.ID.String(),
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: created,
	}
}
