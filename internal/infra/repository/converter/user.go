package converter

import (
	"slot-booking/internal/domain/user"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func CompanyToCreateParams(u *user.User, p *user.CompanyProfile) sqlc.CreateCompanyParams {
	return sqlc.CreateCompanyParams{
		ID:          p.ID,
		UserID:      u.ID(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func ClientToCreateParams(u *user.User, p *user.ClientProfile) sqlc.CreateClientParams {
	return sqlc.CreateClientParams{
		ID:        p.ID,
		UserID:    u.ID(),
		Name:      p.Name,
		Phone:     p.Phone,
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt()),
	}
}
