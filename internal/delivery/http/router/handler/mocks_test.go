package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sentimenta/internal/usecase"
)

type mockAccountUsecase struct {
	mock.Mock
}

func (m *mockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountUsecase) GetAccount(ctx context.Context, accountID int64) (*usecase.AccountOutput, error) {
	args := m.Called(ctx, accountID)
	if output, ok := args.Get(0).(*usecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountUsecase) UpdateProfile(ctx context.Context, accountID int64, input *usecase.UpdateProfileInput) (*usecase.AccountOutput, error) {
	args := m.Called(ctx, accountID, input)
	if output, ok := args.Get(0).(*usecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountUsecase) ChangePassword(ctx context.Context, accountID int64, input *usecase.ChangePasswordInput) error {
	args := m.Called(ctx, accountID, input)

	return args.Error(0)
}

func (m *mockAccountUsecase) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)

	return args.Error(0)
}

type mockMoodUsecase struct {
	mock.Mock
}

func (m *mockMoodUsecase) AddMood(ctx context.Context, ownerID int64, input *usecase.AddMoodInput) (*usecase.MoodOutput, error) {
	args := m.Called(ctx, ownerID, input)
	if output, ok := args.Get(0).(*usecase.MoodOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMoodUsecase) ListMoods(ctx context.Context, ownerID int64) ([]*usecase.MoodOutput, error) {
	args := m.Called(ctx, ownerID)
	if outputs, ok := args.Get(0).([]*usecase.MoodOutput); ok {
		return outputs, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMoodUsecase) UpdateMood(ctx context.Context, ownerID int64, input *usecase.UpdateMoodInput) (*usecase.MoodOutput, error) {
	args := m.Called(ctx, ownerID, input)
	if output, ok := args.Get(0).(*usecase.MoodOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMoodUsecase) DeleteMood(ctx context.Context, ownerID, moodID int64) error {
	args := m.Called(ctx, ownerID, moodID)

	return args.Error(0)
}
