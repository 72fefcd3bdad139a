package user

import (
	"strings"

	"github.com/google/uuid"
)

type ProfileKind string

const (
	ProfileNone    ProfileKind = "none"
	ProfileCompany ProfileKind = "company"
	ProfileClient  ProfileKind = "client"
)

func (k ProfileKind) String() string {
	return string(k)
}

func (k ProfileKind) IsValid() bool {
	switch k {
	case ProfileNone, ProfileCompany, ProfileClient:
		return true
	default:
		return false
	}
}

func NewProfileKind(s string) (ProfileKind, error) {
	if s == "" {
		return ProfileNone, nil
	}
	kind := ProfileKind(s)
	if !kind.IsValid() {
		return "", ErrInvalidProfileKind
	}
	return kind, nil
}

// Profile is either a *CompanyProfile or a *ClientProfile. A user with no
// profile holds a nil Profile.
type Profile interface {
	Kind() ProfileKind
	ProfileID() uuid.UUID
	DisplayName() string
	sealed()
}

type CompanyProfile struct {
	ID          uuid.UUID
	Name        string
	Description string
}

func NewCompanyProfile(name, description string) (*CompanyProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxProfileNameLength {
		return nil, ErrCompanyNameRequired
	}
	return &CompanyProfile{ID: uuid.New(), Name: name, Description: description}, nil
}

func (*CompanyProfile) Kind() ProfileKind      { return ProfileCompany }
func (p *CompanyProfile) ProfileID() uuid.UUID { return p.ID }
func (p *CompanyProfile) DisplayName() string  { return p.Name }
func (*CompanyProfile) sealed()                {}

type ClientProfile struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

func NewClientProfile(name, phone string) (*ClientProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxProfileNameLength {
		return nil, ErrClientNameRequired
	}
	if len(phone) > MaxPhoneLength {
		return nil, ErrInvalidPhone
	}
	return &ClientProfile{ID: uuid.New(), Name: name, Phone: phone}, nil
}

func (*ClientProfile) Kind() ProfileKind      { return ProfileClient }
func (p *ClientProfile) ProfileID() uuid.UUID { return p.ID }
func (p *ClientProfile) DisplayName() string  { return p.Name }
func (*ClientProfile) sealed()                {}

func KindOf(p Profile) ProfileKind {
	if p == nil {
		return ProfileNone
	}
	return p.Kind()
}
