package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CompanyView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ClientView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfileView carries at most one of Company and Client, named by ProfileKind.
type UserProfileView struct {
	ID          uuid.UUID    `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	ProfileKind string       `json:"profile_kind"`
	Company     *CompanyView `json:"company,omitempty"`
	Client      *ClientView  `json:"client,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

type UserReadStore interface {
	FindProfileByID(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error) {
	v, err := q.readStore.FindProfileByID(ctx, userID)
	if err != nil {
		return nil, mapReadErr(err, "user not found")
	}
	return v, nil
}
