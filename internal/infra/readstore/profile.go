package readstore

import (
	"context"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileReadQueries interface {
	GetCompanyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Companies, error)
	GetClientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Clients, error)
}

// ProfileReadStore reads company and client profile rows by their own id.
type ProfileReadStore struct {
	queries ProfileReadQueries
	db      sqlc.DBTX
}

func NewProfileReadStore(queries ProfileReadQueries, db sqlc.DBTX) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileReadStore) FindCompanyByID(ctx context.Context, id uuid.UUID) (*queries.CompanyView, error) {
	row, err := r.queries.GetCompanyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get company by id", err)
	}
	return &queries.CompanyView{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *ProfileReadStore) FindClientByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	row, err := r.queries.GetClientByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get client by id", err)
	}
	return &queries.ClientView{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Phone:     row.Phone,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
