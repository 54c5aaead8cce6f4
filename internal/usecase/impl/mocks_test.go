package impl

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sentimenta/internal/domain/entity"
)

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *mockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *mockAccountRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockMoodRepository struct {
	mock.Mock
}

func (m *mockMoodRepository) Create(ctx context.Context, moodEntry *entity.MoodEntry) error {
	args := m.Called(ctx, moodEntry)

	return args.Error(0)
}

func (m *mockMoodRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.MoodEntry, error) {
	args := m.Called(ctx, ownerID)
	if moods, ok := args.Get(0).([]*entity.MoodEntry); ok {
		return moods, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMoodRepository) FindByOwnerAndID(ctx context.Context, ownerID, id int64) (*entity.MoodEntry, error) {
	args := m.Called(ctx, ownerID, id)
	if moodEntry, ok := args.Get(0).(*entity.MoodEntry); ok {
		return moodEntry, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMoodRepository) Update(ctx context.Context, moodEntry *entity.MoodEntry) error {
	args := m.Called(ctx, moodEntry)

	return args.Error(0)
}

func (m *mockMoodRepository) Delete(ctx context.Context, ownerID, id int64) error {
	args := m.Called(ctx, ownerID, id)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(accountID int64) (string, error) {
	args := m.Called(accountID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (int64, error) {
	args := m.Called(tokenString)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTokenService) TokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
