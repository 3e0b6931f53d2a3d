package auth

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/ticklist/ticklist/internal/model"
	"github.com/ticklist/ticklist/internal/result"
)

// Credentials is the minimal record the login flow needs.
type Credentials struct {
	ID           string
	PasswordHash string
}

// Repository is the persistence surface the auth service depends on.
// Every method converts storage errors at this boundary; no error
// crosses it as a raised error.
type Repository interface {
	CheckEmail(ctx context.Context, email string) result.Result[result.None]
	CreateAccount(ctx context.Context, username, email, passwordHash string) result.Result[string]
	Credentials(ctx context.Context, email string) result.Result[Credentials]
}

type bunRepository struct {
	db    *bun.DB
	users repository.Repository[*model.User]
	log   Logger
}

// NewRepository creates the bun-backed auth repository.
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

// CheckEmail fails with EMAIL_EXISTS when the address is already taken.
func (r *bunRepository) CheckEmail(ctx context.Context, email string) result.Result[result.None] {
	exists, err := r.db.NewSelect().
		Model((*model.User)(nil)).
		Where("email = ?", email).
		Exists(ctx)
	if err != nil {
		r.log.Error("email lookup failed", "error", err)
		return result.Fail[result.None]("Error checking email", result.ServerError)
	}

	if exists {
		return result.Fail[result.None]("Email already exists", result.EmailExists)
	}

	return result.Ok(result.None{})
}

// CreateAccount inserts a new user and returns its id.
func (r *bunRepository) CreateAccount(ctx context.Context, username, email, passwordHash string) result.Result[string] {
	record := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if _, err := r.users.CreateTx(ctx, r.db, record); err != nil {
		r.log.Error("account insert failed", "error", err, "email", email)
		return result.Fail[string]("Error signing up", result.ServerError)
	}

	return result.Ok(record.ID.String())
}

// Credentials fetches id and password hash by email. An unknown address
// surfaces as INVALID_CREDENTIALS so login responses never reveal which
// part was wrong.
func (r *bunRepository) Credentials(ctx context.Context, email string) result.Result[Credentials] {
	record := &model.User{}
	err := r.db.NewSelect().
		Model(record).
		Column("id", "password_hash").
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return result.Fail[Credentials]("Invalid email or password", result.InvalidCredentials)
		}
		r.log.Error("credentials lookup failed", "error", err)
		return result.Fail[Credentials]("Error logging in", result.ServerError)
	}

	return result.Ok(Credentials{
		ID:           record.ID.String(),
		PasswordHash: record.PasswordHash,
	})
}
