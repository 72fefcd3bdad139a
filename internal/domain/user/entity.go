package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	profile      Profile
	createdAt    time.Time
}

// NewUser builds a user owning at most one profile. A nil profile is allowed.
func NewUser(username Username, email Email, passwordHash, firstName, lastName string, profile Profile, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		profile:      profile,
		createdAt:    now,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Username() Username       { return u.username }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) FirstName() string        { return u.firstName }
func (u *User) LastName() string         { return u.lastName }
func (u *User) Profile() Profile         { return u.profile }
func (u *User) ProfileKind() ProfileKind { return KindOf(u.profile) }
func (u *User) CreatedAt() time.Time     { return u.createdAt }

func (u *User) Company() (*CompanyProfile, bool) {
	p, ok := u.profile.(*CompanyProfile)
	return p, ok
}

func (u *User) Client() (*ClientProfile, bool) {
	p, ok := u.profile.(*ClientProfile)
	return p, ok
}
