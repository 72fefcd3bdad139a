package password

import (
	"slot-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes is the longest input bcrypt hashes without truncation.
const MaxBytes = 72

var (
	ErrInvalidPassword  = errs.Mark(errs.New("password is empty"), errs.ErrDomainValidation)
	ErrPasswordTooLong  = errs.Mark(errs.Newf("password exceeds %d bytes", MaxBytes), errs.ErrDomainValidation)
	ErrComparisonFailed = errs.New("password does not match")
)

const DefaultCost = bcrypt.DefaultCost

// HashPassword returns a bcrypt hash. Input errors are marked as validation
// failures so they surface as 400 rather than 500.
func HashPassword(password string) (string, error) {
	switch {
	case password == "":
		return "", ErrInvalidPassword
	case len(password) > MaxBytes:
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt")
	}
	return string(hashed), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrComparisonFailed
	}
	return err
}
