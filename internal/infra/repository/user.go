package repository

import (
	"context"

	"slot-booking/internal/domain/user"
	"slot-booking/internal/infra"
	"slot-booking/internal/infra/repository/converter"
	sqlc "slot-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	CreateCompany(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCompanyParams) (uuid.UUID, error)
	CreateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClientParams) (uuid.UUID, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// Create must run inside a transaction so a failed profile insert leaves no user row.
func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}

	switch p := u.Profile().(type) {
	case *user.CompanyProfile:
		if _, err := r.queries.CreateCompany(ctx, tx, converter.CompanyToCreateParams(u, p)); err != nil {
			return infra.WrapRepoErr("failed to create company profile", err)
		}
	case *user.ClientProfile:
		if _, err := r.queries.CreateClient(ctx, tx, converter.ClientToCreateParams(u, p)); err != nil {
			return infra.WrapRepoErr("failed to create client profile", err)
		}
	}
	return nil
}
