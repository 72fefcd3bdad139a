package readstore

import (
	"context"

	"slot-booking/internal/domain/user"
	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserProfileByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserProfileByIDRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	row, err := r.queries.GetUserProfileByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user profile by id", err)
	}
	return toUserProfileView(row), nil
}

func toUserProfileView(row sqlc.GetUserProfileByIDRow) *queries.UserProfileView {
	v := &queries.UserProfileView{
		ID:          row.ID,
		Username:    row.Username,
		Email:       row.Email,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		ProfileKind: user.ProfileNone.String(),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}

	switch {
	case row.CompanyID.Valid:
		v.ProfileKind = user.ProfileCompany.String()
		v.Company = &queries.CompanyView{
			ID:          uuid.UUID(row.CompanyID.Bytes),
			UserID:      row.ID,
			Name:        row.CompanyName.String,
			Description: row.CompanyDescription.String,
		}
	case row.ClientID.Valid:
		v.ProfileKind = user.ProfileClient.String()
		v.Client = &queries.ClientView{
			ID:     uuid.UUID(row.ClientID.Bytes),
			UserID: row.ID,
			Name:   row.ClientName.String,
			Phone:  row.ClientPhone.String,
		}
	}
	return v
}
