package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sentimenta/config"
	"sentimenta/internal/domain/entity"
	domainerrors "sentimenta/internal/domain/errors"
	"sentimenta/internal/domain/repository"
	"sentimenta/internal/usecase"
)

type moodServiceFixture struct {
	moodRepo *mockMoodRepository
	service  usecase.MoodUsecase
}

func newMoodServiceFixture() *moodServiceFixture {
	moodRepo := new(mockMoodRepository)

	cfg := &config.Config{
		Limits: &config.LimitsConfig{MoodDescMaxLength: 50, MoodEmotionsMaxLen: 20},
	}

	svc := NewMoodService(MoodServiceParams{
		MoodRepo: moodRepo,
		Config:   cfg,
		Logger:   slog.Default(),
	})

	return &moodServiceFixture{moodRepo: moodRepo, service: svc}
}

func validAddMoodInput() *usecase.AddMoodInput {
	return &usecase.AddMoodInput{
		Score:       4,
		Emotions:    "calm,hopeful",
		Description: "a good day",
		Date:        time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestMoodService_AddMood_Success(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	fixture.moodRepo.On("Create", ctx, mock.MatchedBy(func(moodEntry *entity.MoodEntry) bool {
		return moodEntry.UserID == 7 && moodEntry.Score == 4
	})).Run(func(args mock.Arguments) {
		moodEntry := args.Get(1).(*entity.MoodEntry)
		moodEntry.Uid = 100
	}).Return(nil)

	output, err := fixture.service.AddMood(ctx, 7, validAddMoodInput())
	require.NoError(t, err)
	assert.Equal(t, int64(100), output.Uid)
	assert.Equal(t, int64(7), output.UserID)
}

func TestMoodService_AddMood_Validation(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*usecase.AddMoodInput)
	}{
		{"score below minimum", func(in *usecase.AddMoodInput) { in.Score = 0 }},
		{"score above maximum", func(in *usecase.AddMoodInput) { in.Score = 6 }},
		{"zero date", func(in *usecase.AddMoodInput) { in.Date = time.Time{} }},
		{"description too long", func(in *usecase.AddMoodInput) {
			in.Description = "this description is definitely longer than fifty characters, way too long"
		}},
		{"emotions too long", func(in *usecase.AddMoodInput) {
			in.Emotions = "joy,sadness,anger,fear,surprise"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validAddMoodInput()
			tc.mutate(input)

			_, err := fixture.service.AddMood(ctx, 7, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	fixture.moodRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMoodService_AddMood_ScoreBoundsInclusive(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	fixture.moodRepo.On("Create", ctx, mock.Anything).Return(nil)

	for _, score := range []int16{entity.MoodScoreMin, entity.MoodScoreMax} {
		input := validAddMoodInput()
		input.Score = score

		_, err := fixture.service.AddMood(ctx, 7, input)
		assert.NoError(t, err)
	}
}

func TestMoodService_ListMoods(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	moods := []*entity.MoodEntry{
		{Uid: 2, UserID: 7, Score: 5, Date: time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)},
		{Uid: 1, UserID: 7, Score: 3, Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
	}
	fixture.moodRepo.On("ListByOwner", ctx, int64(7)).Return(moods, nil)

	outputs, err := fixture.service.ListMoods(ctx, 7)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, int64(2), outputs[0].Uid)
}

func TestMoodService_ListMoods_Empty(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	fixture.moodRepo.On("ListByOwner", ctx, int64(7)).Return([]*entity.MoodEntry{}, nil)

	outputs, err := fixture.service.ListMoods(ctx, 7)
	require.NoError(t, err)
	assert.NotNil(t, outputs)
	assert.Empty(t, outputs)
}

func TestMoodService_UpdateMood_Partial(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	existing := &entity.MoodEntry{
		Uid: 100, UserID: 7, Score: 3, Emotions: "tired", Description: "meh",
		Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
	fixture.moodRepo.On("FindByOwnerAndID", ctx, int64(7), int64(100)).Return(existing, nil)

	newScore := int16(5)
	fixture.moodRepo.On("Update", ctx, mock.MatchedBy(func(moodEntry *entity.MoodEntry) bool {
		return moodEntry.Score == 5 && moodEntry.Emotions == "tired"
	})).Return(nil)

	output, err := fixture.service.UpdateMood(ctx, 7, &usecase.UpdateMoodInput{Uid: 100, Score: &newScore})
	require.NoError(t, err)
	assert.Equal(t, int16(5), output.Score)
	assert.Equal(t, "tired", output.Emotions)
}

func TestMoodService_UpdateMood_OtherOwnersEntryLooksAbsent(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	fixture.moodRepo.On("FindByOwnerAndID", ctx, int64(8), int64(100)).Return(nil, repository.ErrMoodNotFound)

	newScore := int16(5)
	_, err := fixture.service.UpdateMood(ctx, 8, &usecase.UpdateMoodInput{Uid: 100, Score: &newScore})
	assert.ErrorIs(t, err, domainerrors.ErrMoodNotFound)
}

func TestMoodService_UpdateMood_InvalidScore(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	existing := &entity.MoodEntry{Uid: 100, UserID: 7, Score: 3, Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)}
	fixture.moodRepo.On("FindByOwnerAndID", ctx, int64(7), int64(100)).Return(existing, nil)

	badScore := int16(9)
	_, err := fixture.service.UpdateMood(ctx, 7, &usecase.UpdateMoodInput{Uid: 100, Score: &badScore})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fixture.moodRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMoodService_DeleteMood(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	fixture.moodRepo.On("Delete", ctx, int64(7), int64(100)).Return(nil)

	assert.NoError(t, fixture.service.DeleteMood(ctx, 7, 100))
}

func TestMoodService_DeleteMood_NotFound(t *testing.T) {
	fixture := newMoodServiceFixture()
	ctx := context.Background()

	fixture.moodRepo.On("Delete", ctx, int64(7), int64(100)).Return(repository.ErrMoodNotFound)

	err := fixture.service.DeleteMood(ctx, 7, 100)
	assert.ErrorIs(t, err, domainerrors.ErrMoodNotFound)
}
