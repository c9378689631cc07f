package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"beaticafe/internal/domain/model"
	"beaticafe/internal/repository"

	"github.com/go-faster/errors"
)

// Validators are injected as interfaces
type AuthValidator interface {
	ValidateLogin(ctx context.Context, in LoginInput) error
	ValidateSignup(ctx context.Context, in SignupInput) error
}

// AccessTokenIssuer signs access tokens.
type AccessTokenIssuer interface {
	Issue(userID string, tokenVersion int, now time.Time) (token string, expiresAt time.Time, err error)
}

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// CartDiscarder drops a user's cart on logout.
type CartDiscarder interface {
	Discard(userID string)
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type JwtAccessTokenDTO struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenVersion int    `json:"token_version"`
}

type AuthOutput struct {
	User  model.User        `json:"user"`
	Token JwtAccessTokenDTO `json:"token"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// AuthUsecase is mock authentication: any well-formed credentials log in,
// no password is checked or stored. It only exists to gate the cart.
type AuthUsecase struct {
	users     repository.UserRepository
	validator AuthValidator
	issuer    AccessTokenIssuer
	idGen     IDGenerator
	clock     Clock
	carts     CartDiscarder
	delay     time.Duration
}

func NewAuthUsecase(
	users repository.UserRepository,
	validator AuthValidator,
	issuer AccessTokenIssuer,
	idGen IDGenerator,
	clock Clock,
	carts CartDiscarder,
	delay time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		validator: validator,
		issuer:    issuer,
		idGen:     idGen,
		clock:     clock,
		carts:     carts,
		delay:     delay,
	}
}

// Login signs in; an unknown email gets an account named after its local part.
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in); err != nil {
		return AuthOutput{}, err
	}
	if err := u.wait(ctx); err != nil {
		return AuthOutput{}, err
	}

	email := normalizeEmail(in.Email)
	now := u.clock.Now()

	user, err := u.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		user = &model.User{
			ID:          u.idGen.NewID(),
			Name:        localPart(email),
			Email:       email,
			CreatedAt:   now,
			LastLoginAt: now,
		}
		if err := u.users.Create(ctx, user); err != nil {
			// a concurrent first login for the same email may have won
			existing, ferr := u.users.FindByEmail(ctx, email)
			if ferr != nil {
				return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
			}
			user = existing
		}
	case err != nil:
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	default:
		user.LastLoginAt = now
		if err := u.users.Update(ctx, user); err != nil {
			return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return u.output(user, now)
}

// Signup creates an account. The email must not be taken.
func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (AuthOutput, error) {
	if err := u.validator.ValidateSignup(ctx, in); err != nil {
		if _, ok := AsHTTPError(err); ok {
			return AuthOutput{}, err
		}
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.wait(ctx); err != nil {
		return AuthOutput{}, err
	}

	now := u.clock.Now()
	user := &model.User{
		ID:          u.idGen.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Email:       normalizeEmail(in.Email),
		CreatedAt:   now,
		LastLoginAt: now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		// only a taken email is a conflict
		if _, ferr := u.users.FindByEmail(ctx, user.Email); ferr == nil {
			return AuthOutput{}, NewHTTPError(http.StatusConflict, "email already used")
		}
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.output(user, now)
}

// Logout invalidates every token of the user and forgets their cart.
func (u *AuthUsecase) Logout(ctx context.Context, userID string) (SuccessResponse, error) {
	if userID == "" {
		return SuccessResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	err := u.users.IncrementTokenVersion(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return SuccessResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return SuccessResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	u.carts.Discard(userID)
	return SuccessResponse{Message: "logout success"}, nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return *user, nil
}

func (u *AuthUsecase) output(user *model.User, now time.Time) (AuthOutput, error) {
	token, exp, err := u.issuer.Issue(user.ID, user.TokenVersion, now)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return AuthOutput{
		User: *user,
		Token: JwtAccessTokenDTO{
			AccessToken:  token,
			ExpiresIn:    int(exp.Sub(now).Seconds()),
			TokenVersion: user.TokenVersion,
		},
	}, nil
}

// wait is the artificial latency of the mock backend.
func (u *AuthUsecase) wait(ctx context.Context) error {
	if u.delay <= 0 {
		return nil
	}
	t := time.NewTimer(u.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return NewHTTPError(http.StatusServiceUnavailable, "request canceled")
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
