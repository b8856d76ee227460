package repository

import (
	"context"
	"time"

	"padel-booking/internal/domain/user"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	UpdateUserLastLogin(ctx context.Context, db pgquery.DBTX, id uuid.UUID, at time.Time) error
	CreateUser(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateUserParams) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      pgquery.DBTX
}

func NewUserRepository(queries UserWriteQueries, db pgquery.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User, at time.Time) error {
	params := pgquery.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		DisplayName:  u.DisplayName(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    at,
	}

	if err := r.queries.CreateUser(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
