package account

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

const (
	maxUsernameLen = 64
	maxEmailLen    = 254
)

// RegisterInput holds parameters for the Register operation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.TrimSpace(i.Email)
}

// Validate validates the register input. Password content is checked by the hasher.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(i.Username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if msg := checkEmail(i.Email); msg != "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: msg})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for the Login and Authenticate operations.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// checkEmail returns a validation message, or "" for a bare valid address.
func checkEmail(email string) string {
	if email == "" {
		return "required"
	}
	if len(email) > maxEmailLen {
		return "too long"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "invalid email address"
	}
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || !strings.Contains(email[at+1:], ".") {
		return "invalid email address"
	}
	return ""
}
