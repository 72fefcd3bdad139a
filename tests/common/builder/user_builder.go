//go:build unit || integration

package builder

import (
	"time"

	"slot-booking/internal/domain/user"
)

type UserBuilder struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	ProfileKind  string
	ProfileName  string
	Description  string
	Phone        string
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "acme",
		Email:        "owner@acme.example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Ada",
		LastName:     "Owner",
		ProfileKind:  string(user.ProfileCompany),
		ProfileName:  "Acme Dental",
		Description:  "Family dentistry",
		Now:          time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	kind, err := user.NewProfileKind(u.ProfileKind)
	if err != nil {
		return nil, err
	}

	var profile user.Profile
	switch kind {
	case user.ProfileCompany:
		p, err := user.NewCompanyProfile(u.ProfileName, u.Description)
		if err != nil {
			return nil, err
		}
		profile = p
	case user.ProfileClient:
		p, err := user.NewClientProfile(u.ProfileName, u.Phone)
		if err != nil {
			return nil, err
		}
		profile = p
	}

	return user.NewUser(username, email, u.PasswordHash, u.FirstName, u.LastName, profile, u.Now), nil
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithProfileKind(kind string) *UserBuilder {
	u.ProfileKind = kind
	return u
}

func (u *UserBuilder) WithProfileName(name string) *UserBuilder {
	u.ProfileName = name
	return u
}

func (u *UserBuilder) AsClient(name, phone string) *UserBuilder {
	u.ProfileKind = string(user.ProfileClient)
	u.ProfileName = name
	u.Description = ""
	u.Phone = phone
	return u
}
