package usecase

import (
	"context"
	"time"

	"beaticafe/internal/domain/model"
	"beaticafe/internal/infra/llm"
	repo "beaticafe/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	panic("not used by CatalogUsecase")
}

func (m *ProductRepoMock) Upsert(ctx context.Context, p model.Product) error {
	panic("not used by CatalogUsecase")
}

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepoMock) IncrementTokenVersion(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*UserRepoMock)(nil)

type ContactRepoMock struct{ mock.Mock }

func (m *ContactRepoMock) Create(ctx context.Context, msg model.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *ContactRepoMock) List(ctx context.Context, f repo.ContactFilter) ([]model.ContactMessage, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.ContactMessage)
	return items, args.Error(1)
}

type AuthValidatorMock struct{ mock.Mock }

func (m *AuthValidatorMock) ValidateLogin(ctx context.Context, in LoginInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *AuthValidatorMock) ValidateSignup(ctx context.Context, in SignupInput) error {
	return m.Called(ctx, in).Error(0)
}

type ContactValidatorMock struct{ mock.Mock }

func (m *ContactValidatorMock) ValidateContact(in ContactInput) error {
	return m.Called(in).Error(0)
}

func (m *ContactValidatorMock) ValidateReport(in ReportInput) error {
	return m.Called(in).Error(0)
}

type IssuerMock struct{ mock.Mock }

func (m *IssuerMock) Issue(userID string, tokenVersion int, now time.Time) (string, time.Time, error) {
	args := m.Called(userID, tokenVersion, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type CartDiscarderMock struct{ mock.Mock }

func (m *CartDiscarderMock) Discard(userID string) {
	m.Called(userID)
}

type CompleterMock struct{ mock.Mock }

func (m *CompleterMock) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

type fixedID string

func (f fixedID) NewID() string { return string(f) }

type fixedClock time.Time

func (f fixedClock) Now() time.Time { return time.Time(f) }

type staticPrompt string

func (s staticPrompt) SystemPrompt() string { return string(s) }

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testMenu is a small catalog, in position order.
func testMenu() []model.Product {
	return []model.Product{
		{ID: "espresso", Name: "Espresso", Category: model.CategoryCoffee, Price: price("3.50"), Featured: true, Position: 0},
		{ID: "latte", Name: "Caffe Latte", Category: model.CategoryCoffee, Price: price("4.75"), Position: 1},
		{ID: "green-tea", Name: "Green Tea", Category: model.CategoryTea, Price: price("3.00"), Position: 2},
		{ID: "croissant", Name: "Butter Croissant", Category: model.CategoryPastry, Price: price("3.25"), Featured: true, Position: 3},
		{ID: "club", Name: "Club Sandwich", Category: model.CategoryFood, Price: price("8.50"), Position: 4},
	}
}
