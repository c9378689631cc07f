package validator

import (
	"context"
	"net/http"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"beaticafe/internal/domain/model"
	"beaticafe/internal/repository"
	"beaticafe/internal/usecase"

	"github.com/go-faster/errors"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// fieldErrors collects the first problem of each field.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return usecase.NewValidationError(f)
}

type authValidator struct {
	users repository.UserRepository
}

// Usecase depends on the interface
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

func (v *authValidator) ValidateLogin(ctx context.Context, in usecase.LoginInput) error {
	fe := fieldErrors{}
	checkEmail(fe, in.Email)
	checkLength(fe, "password", in.Password, 6, 100, "Password must be at least 6 characters", "Password is too long")
	return fe.err()
}

func (v *authValidator) ValidateSignup(ctx context.Context, in usecase.SignupInput) error {
	fe := fieldErrors{}

	checkLength(fe, "name", strings.TrimSpace(in.Name), 2, 50, "Name must be at least 2 characters", "Name is too long")
	if !namePattern.MatchString(in.Name) {
		fe.add("name", "Name can only contain letters and spaces")
	}
	checkEmail(fe, in.Email)
	checkLength(fe, "password", in.Password, 6, 100, "Password must be at least 6 characters", "Password is too long")
	if !hasLowerUpperDigit(in.Password) {
		fe.add("password", "Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	if in.ConfirmPassword == "" {
		fe.add("confirm_password", "Please confirm your password")
	} else if in.ConfirmPassword != in.Password {
		fe.add("confirm_password", "Passwords don't match")
	}
	if err := fe.err(); err != nil {
		return err
	}

	// duplicate email needs the store
	_, err := v.users.FindByEmail(ctx, normalizeEmail(in.Email))
	switch {
	case err == nil:
		return usecase.NewHTTPError(http.StatusConflict, "email already used")
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return errors.Wrap(err, "check email")
	}
}

type contactValidator struct{}

func NewContactValidator() usecase.ContactValidator {
	return contactValidator{}
}

func (contactValidator) ValidateContact(in usecase.ContactInput) error {
	fe := fieldErrors{}
	checkLength(fe, "name", strings.TrimSpace(in.Name), 2, 50, "Name must be at least 2 characters", "Name is too long")
	checkEmail(fe, in.Email)
	checkLength(fe, "message", strings.TrimSpace(in.Message), 10, 500, "Message must be at least 10 characters", "Message is too long")
	return fe.err()
}

func (contactValidator) ValidateReport(in usecase.ReportInput) error {
	fe := fieldErrors{}
	checkLength(fe, "name", strings.TrimSpace(in.Name), 2, 50, "Name must be at least 2 characters", "Name is too long")
	checkEmail(fe, in.Email)
	if in.IssueType == "" {
		fe.add("issue_type", "Please select an issue type")
	} else if !slices.Contains(model.IssueTypes, in.IssueType) {
		fe.add("issue_type", "Unknown issue type")
	}
	checkLength(fe, "description", strings.TrimSpace(in.Description), 10, 2000, "Description must be at least 10 characters", "Description is too long")
	return fe.err()
}

func checkEmail(fe fieldErrors, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		fe.add("email", "Email is required")
		return
	}
	if !isEmailLike(email) {
		fe.add("email", "Please enter a valid email address")
	}
}

// checkLength counts runes, not bytes.
func checkLength(fe fieldErrors, field, s string, lo, hi int, short, long string) {
	n := utf8.RuneCountInString(s)
	switch {
	case n < lo:
		fe.add(field, short)
	case n > hi:
		fe.add(field, long)
	}
}

func hasLowerUpperDigit(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// isEmailLike wants a single bare address with a dotted domain.
func isEmailLike(s string) bool {
	if !emailPattern.MatchString(s) {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
