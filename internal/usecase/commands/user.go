package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"slot-booking/internal/domain/user"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/pkg/password"
	"slot-booking/internal/usecase/shared"
)

// RegisterUserRequest carries the account fields plus an optional profile.
// ProfileKind "" registers a user with no profile.
type RegisterUserRequest struct {
	Username           string
	Email              string
	Password           string
	FirstName          string
	LastName           string
	ProfileKind        string
	CompanyName        string
	CompanyDescription string
	ClientName         string
	Phone              string
}

type UserCommands interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*user.User, error)
}

type userUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewUserUseCase(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

func (uc *userUseCaseImpl) RegisterUser(ctx context.Context, req RegisterUserRequest) (registered *user.User, err error) {
	defer func() { uc.metrics.ObserveOperation("register_user", err) }()

	u, err := uc.buildUser(req)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Users().Create(ctx, tx.DB(), u)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return errs.Mark(derr, errs.ErrDuplicateUser)
		}
		return mapRepoErr(derr, "create user")
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "User registered",
		slog.String("user_id", u.ID().String()),
		slog.String("profile_kind", string(u.ProfileKind())))
	return u, nil
}

func (uc *userUseCaseImpl) buildUser(req RegisterUserRequest) (*user.User, error) {
	username, err := user.NewUsername(req.Username)
	if err != nil {
		return nil, markDomainErr(err)
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, markDomainErr(err)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, markDomainErr(err)
	}
	kind, err := user.NewProfileKind(req.ProfileKind)
	if err != nil {
		return nil, markDomainErr(err)
	}

	var profile user.Profile
	switch kind {
	case user.ProfileCompany:
		profile, err = user.NewCompanyProfile(req.CompanyName, req.CompanyDescription)
	case user.ProfileClient:
		profile, err = user.NewClientProfile(req.ClientName, req.Phone)
	case user.ProfileNone:
	}
	if err != nil {
		return nil, markDomainErr(err)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	return user.NewUser(username, email, hash, req.FirstName, req.LastName, profile, uc.clock.Now()), nil
}
