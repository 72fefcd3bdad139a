package user

import (
	"errors"
	"regexp"
	"strings"
)

const (
	MaxUsernameLength    = 150
	MaxProfileNameLength = 100
	MaxPhoneLength       = 20
)

var (
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidUsername     = errors.New("username must be 1-150 characters of letters, digits and @.+-_")
	ErrPasswordTooWeak     = errors.New("password must be at least 8 characters long")
	ErrInvalidProfileKind  = errors.New("invalid profile kind")
	ErrCompanyNameRequired = errors.New("company name is required for a company profile")
	ErrClientNameRequired  = errors.New("client name is required for a client profile")
	ErrInvalidPhone        = errors.New("phone must be at most 20 characters")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[\w.@+\-]+$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxUsernameLength || !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
