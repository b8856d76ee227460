package pgquery

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var userColumns = []string{
	"id", "email", "display_name", "password_hash", "role", "is_active", "last_login", "created_at", "updated_at",
}

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (UserRow, error) {
	return collectOne[UserRow](ctx, db, psql.Select(userColumns...).From("admin_users").Where(sq.Eq{"email": email}))
}

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (UserRow, error) {
	return collectOne[UserRow](ctx, db, psql.Select(userColumns...).From("admin_users").Where(sq.Eq{"id": id}))
}

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at time.Time) error {
	_, err := exec(ctx, db, psql.Update("admin_users").
		Set("last_login", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}))
	return err
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := exec(ctx, db, psql.Insert("admin_users").
		Columns("id", "email", "display_name", "password_hash", "role", "is_active", "created_at", "updated_at").
		Values(arg.ID, arg.Email, arg.DisplayName, arg.PasswordHash, arg.Role, arg.IsActive, arg.CreatedAt, arg.CreatedAt))
	return err
}
