package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"beaticafe/internal/domain/model"
	"beaticafe/internal/repository"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authDeps struct {
	users     *UserRepoMock
	validator *AuthValidatorMock
	issuer    *IssuerMock
	carts     *CartDiscarderMock
}

func newAuthUC(delay time.Duration) (*AuthUsecase, authDeps) {
	d := authDeps{
		users:     new(UserRepoMock),
		validator: new(AuthValidatorMock),
		issuer:    new(IssuerMock),
		carts:     new(CartDiscarderMock),
	}
	uc := NewAuthUsecase(d.users, d.validator, d.issuer, fixedID("u-1"), fixedClock(testNow), d.carts, delay)
	return uc, d
}

func TestAuthUsecase_Login_NewUser(t *testing.T) {
	uc, d := newAuthUC(0)
	in := LoginInput{Email: " Ada@Example.com ", Password: "secret1"}
	d.validator.On("ValidateLogin", mock.Anything, in).Return(nil)
	d.users.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, repository.ErrNotFound)
	d.users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.ID == "u-1" && u.Name == "ada" && u.Email == "ada@example.com" && u.CreatedAt.Equal(testNow)
	})).Return(nil)
	d.issuer.On("Issue", "u-1", 0, testNow).Return("tok", testNow.Add(15*time.Minute), nil)

	out, err := uc.Login(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "ada", out.User.Name)
	assert.Equal(t, JwtAccessTokenDTO{AccessToken: "tok", ExpiresIn: 900, TokenVersion: 0}, out.Token)
	d.users.AssertExpectations(t)
	d.issuer.AssertExpectations(t)
}

func TestAuthUsecase_Login_ExistingUser(t *testing.T) {
	uc, d := newAuthUC(0)
	in := LoginInput{Email: "ada@example.com", Password: "secret1"}
	existing := &model.User{ID: "u-9", Name: "Ada Lovelace", Email: "ada@example.com", TokenVersion: 2}
	d.validator.On("ValidateLogin", mock.Anything, in).Return(nil)
	d.users.On("FindByEmail", mock.Anything, "ada@example.com").Return(existing, nil)
	d.users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.ID == "u-9" && u.LastLoginAt.Equal(testNow)
	})).Return(nil)
	d.issuer.On("Issue", "u-9", 2, testNow).Return("tok", testNow.Add(time.Minute), nil)

	out, err := uc.Login(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", out.User.Name)
	assert.Equal(t, 2, out.Token.TokenVersion)
	d.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Login_LosesCreateRace(t *testing.T) {
	uc, d := newAuthUC(0)
	in := LoginInput{Email: "ada@example.com", Password: "secret1"}
	winner := &model.User{ID: "u-7", Name: "ada", Email: "ada@example.com"}
	d.validator.On("ValidateLogin", mock.Anything, in).Return(nil)
	d.users.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, repository.ErrNotFound).Once()
	d.users.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))
	d.users.On("FindByEmail", mock.Anything, "ada@example.com").Return(winner, nil).Once()
	d.issuer.On("Issue", "u-7", 0, testNow).Return("tok", testNow.Add(time.Minute), nil)

	out, err := uc.Login(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "u-7", out.User.ID)
	d.users.AssertExpectations(t)
}

func TestAuthUsecase_Login_CreateFails(t *testing.T) {
	uc, d := newAuthUC(0)
	in := LoginInput{Email: "ada@example.com", Password: "secret1"}
	d.validator.On("ValidateLogin", mock.Anything, in).Return(nil)
	d.users.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, repository.ErrNotFound)
	d.users.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := uc.Login(context.Background(), in)

	requireStatus(t, err, http.StatusInternalServerError)
}

func TestAuthUsecase_Login_Invalid(t *testing.T) {
	uc, d := newAuthUC(0)
	in := LoginInput{Email: "nope"}
	d.validator.On("ValidateLogin", mock.Anything, in).Return(NewValidationError(map[string]string{"email": "Please enter a valid email"}))

	_, err := uc.Login(context.Background(), in)

	he := requireStatus(t, err, http.StatusBadRequest)
	assert.Contains(t, he.Fields, "email")
	d.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Login_CanceledDuringDelay(t *testing.T) {
	uc, d := newAuthUC(time.Hour)
	in := LoginInput{Email: "ada@example.com", Password: "secret1"}
	d.validator.On("ValidateLogin", mock.Anything, in).Return(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Login(ctx, in)

	requireStatus(t, err, http.StatusServiceUnavailable)
}

func TestAuthUsecase_Signup(t *testing.T) {
	uc, d := newAuthUC(0)
	in := SignupInput{Name: " Ada Lovelace ", Email: "ADA@example.com", Password: "Secret1", ConfirmPassword: "Secret1"}
	d.validator.On("ValidateSignup", mock.Anything, in).Return(nil)
	d.users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Name == "Ada Lovelace" && u.Email == "ada@example.com"
	})).Return(nil)
	d.issuer.On("Issue", "u-1", 0, testNow).Return("tok", testNow.Add(15*time.Minute), nil)

	out, err := uc.Signup(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "u-1", out.User.ID)
	assert.Equal(t, "tok", out.Token.AccessToken)
}

func TestAuthUsecase_Signup_Errors(t *testing.T) {
	in := SignupInput{Name: "Ada", Email: "ada@example.com", Password: "Secret1", ConfirmPassword: "Secret1"}

	t.Run("validator db error is 500", func(t *testing.T) {
		uc, d := newAuthUC(0)
		d.validator.On("ValidateSignup", mock.Anything, in).Return(errors.New("db down"))

		_, err := uc.Signup(context.Background(), in)

		requireStatus(t, err, http.StatusInternalServerError)
	})

	t.Run("create race is 409", func(t *testing.T) {
		uc, d := newAuthUC(0)
		d.validator.On("ValidateSignup", mock.Anything, in).Return(nil)
		d.users.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))
		d.users.On("FindByEmail", mock.Anything, "ada@example.com").Return(&model.User{ID: "u-0"}, nil)

		_, err := uc.Signup(context.Background(), in)

		requireStatus(t, err, http.StatusConflict)
	})

	t.Run("create failure with free email is 500", func(t *testing.T) {
		uc, d := newAuthUC(0)
		d.validator.On("ValidateSignup", mock.Anything, in).Return(nil)
		d.users.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
		d.users.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, repository.ErrNotFound)

		_, err := uc.Signup(context.Background(), in)

		he := requireStatus(t, err, http.StatusInternalServerError)
		assert.Equal(t, "db error", he.Message)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	uc, d := newAuthUC(0)
	d.users.On("IncrementTokenVersion", mock.Anything, "u-1").Return(nil)
	d.carts.On("Discard", "u-1").Return()

	out, err := uc.Logout(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, "logout success", out.Message)
	d.carts.AssertExpectations(t)
}

func TestAuthUsecase_Logout_UnknownUser(t *testing.T) {
	uc, d := newAuthUC(0)
	d.users.On("IncrementTokenVersion", mock.Anything, "ghost").Return(repository.ErrNotFound)

	_, err := uc.Logout(context.Background(), "ghost")

	requireStatus(t, err, http.StatusUnauthorized)
	d.carts.AssertNotCalled(t, "Discard", mock.Anything)
}

func TestAuthUsecase_Me(t *testing.T) {
	uc, d := newAuthUC(0)
	d.users.On("FindByID", mock.Anything, "u-1").Return(&model.User{ID: "u-1", Name: "ada"}, nil)

	u, err := uc.Me(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "ada", u.Name)

	_, err = uc.Me(context.Background(), "")
	requireStatus(t, err, http.StatusUnauthorized)
}
