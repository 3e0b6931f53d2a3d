package users

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/ticklist/ticklist/internal/model"
	"github.com/ticklist/ticklist/internal/result"
)

// Profile is the account view exposed to its owner. The password hash
// never leaves the repository.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Repository is the persistence surface the users service depends on.
type Repository interface {
	Get(ctx context.Context, id string) result.Result[Profile]
	UpdateUsername(ctx context.Context, id, username string) result.Result[Profile]
	Delete(ctx context.Context, id string) result.Result[result.None]
}

type bunRepository struct {
	db    *bun.DB
	users repository.Repository[*model.User]
	log   Logger
}

// NewRepository creates the bun-backed users repository.
func NewRepository(db *bun.DB, logger Logger) Repository {
	if logger == nil {
		logger = nopLogger{}
	}
	return &bunRepository{
		db:    db,
		users: repository.NewRepository[*model.User](db, model.UserHandlers()),
		log:   logger,
	}
}

// Get fetches the profile for the given account id.
func (r *bunRepository) Get(ctx context.Context, id string) result.Result[Profile] {
	uid, err := uuid.Parse(id)
	if err != nil {
		return result.Fail[Profile]("User not found", result.UserNotFound)
	}

	record, err := r.users.GetByID(ctx, uid.String())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return result.Fail[Profile]("User not found", result.UserNotFound)
		}
		r.log.Error("user lookup failed", "error", err, "user_id", id)
		return result.Fail[Profile]("Error fetching user", result.ServerError)
	}

	return result.Ok(profileOf(record))
}

// UpdateUsername changes the account's username and returns the updated
// profile.
func (r *bunRepository) UpdateUsername(ctx context.Context, id, username string) result.Result[Profile] {
	uid, err := uuid.Parse(id)
	if err != nil {
		return result.Fail[Profile]("User not found", result.UserNotFound)
	}

	record := &model.User{ID: uid, Username: username}
	record, err = r.users.UpdateTx(ctx, r.db, record, repository.UpdateByID(uid.String()))
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return result.Fail[Profile]("User not found", result.UserNotFound)
		}
		r.log.Error("username update failed", "error", err, "user_id", id)
		return result.Fail[Profile]("Error updating user", result.ServerError)
	}

	return result.Ok(profileOf(record))
}

// Delete removes the account. Deleting a user does not cascade here; the
// schema's foreign key handles the todos.
func (r *bunRepository) Delete(ctx context.Context, id string) result.Result[result.None] {
	uid, err := uuid.Parse(id)
	if err != nil {
		return result.Fail[result.None]("User not found", result.UserNotFound)
	}

	res, err := r.db.NewDelete().
		Model((*model.User)(nil)).
		Where("id = ?", uid).
		Exec(ctx)
	if err != nil {
		r.log.Error("user delete failed", "error", err, "user_id", id)
		return result.Fail[result.None]("Error deleting user", result.ServerError)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return result.Fail[result.None]("User not found", result.UserNotFound)
	}

	return result.Ok(result.None{})
}

func profileOf(u *model.User) Profile {
	return Profile{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}
