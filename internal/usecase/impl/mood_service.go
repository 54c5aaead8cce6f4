package impl

import (
	"context"
	"log/slog"

	"sentimenta/config"
	deliverycontext "sentimenta/internal/delivery/context"
	"sentimenta/internal/domain/entity"
	domainerrors "sentimenta/internal/domain/errors"
	"sentimenta/internal/domain/repository"
	"sentimenta/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// moodService implements the MoodUsecase interface. Ownership is enforced by
// the repository's predicates; this layer only validates field values.
type moodService struct {
	moodRepo       repository.MoodRepository
	descMaxLength  int
	emotionsMaxLen int
	logger         *slog.Logger
}

// MoodServiceParams holds dependencies for moodService, injected by Fx.
type MoodServiceParams struct {
	fx.In

	MoodRepo repository.MoodRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewMoodService is the constructor for moodService.
func NewMoodService(params MoodServiceParams) usecase.MoodUsecase {
	descMaxLength := 1000
	emotionsMaxLen := 200
	if params.Config != nil && params.Config.Limits != nil {
		if params.Config.Limits.MoodDescMaxLength > 0 {
			descMaxLength = params.Config.Limits.MoodDescMaxLength
		}
		if params.Config.Limits.MoodEmotionsMaxLen > 0 {
			emotionsMaxLen = params.Config.Limits.MoodEmotionsMaxLen
		}
	}

	return &moodService{
		moodRepo:       params.MoodRepo,
		descMaxLength:  descMaxLength,
		emotionsMaxLen: emotionsMaxLen,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *moodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddMood records a new mood entry for the owner.
func (srv *moodService) AddMood(ctx context.Context, ownerID int64, input *usecase.AddMoodInput) (*usecase.MoodOutput, error) {
	if err := srv.validateFields(input.Score, input.Emotions, input.Description); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date must be provided")
	}

	newMood := &entity.MoodEntry{
		UserID:      ownerID,
		Score:       input.Score,
		Emotions:    input.Emotions,
		Description: input.Description,
		Date:        input.Date,
	}

	if err := srv.moodRepo.Create(ctx, newMood); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		srv.log(ctx).Error("Failed to create mood entry", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create mood entry")
	}

	srv.log(ctx).Debug("Mood entry created", slog.Int64("ownerID", ownerID), slog.Int64("moodID", newMood.Uid))

	return usecase.ToMoodOutput(newMood), nil
}

// ListMoods returns all of the owner's entries, newest event date first.
func (srv *moodService) ListMoods(ctx context.Context, ownerID int64) ([]*usecase.MoodOutput, error) {
	moods, err := srv.moodRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list mood entries", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list mood entries")
	}

	outputs := make([]*usecase.MoodOutput, 0, len(moods))
	for _, mood := range moods {
		outputs = append(outputs, usecase.ToMoodOutput(mood))
	}

	return outputs, nil
}

// UpdateMood applies a partial update to one of the owner's entries.
func (srv *moodService) UpdateMood(ctx context.Context, ownerID int64, input *usecase.UpdateMoodInput) (*usecase.MoodOutput, error) {
	mood, err := srv.moodRepo.FindByOwnerAndID(ctx, ownerID, input.Uid)
	if err != nil {
		if errors.Is(err, repository.ErrMoodNotFound) {
			return nil, domainerrors.ErrMoodNotFound
		}

		return nil, errors.Wrap(err, "failed to load mood entry for update")
	}

	if input.Score != nil {
		mood.Score = *input.Score
	}
	if input.Emotions != nil {
		mood.Emotions = *input.Emotions
	}
	if input.Description != nil {
		mood.Description = *input.Description
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("date must be provided")
		}
		mood.Date = *input.Date
	}

	if err := srv.validateFields(mood.Score, mood.Emotions, mood.Description); err != nil {
		return nil, err
	}

	if err := srv.moodRepo.Update(ctx, mood); err != nil {
		if errors.Is(err, repository.ErrMoodNotFound) {
			return nil, domainerrors.ErrMoodNotFound
		}

		srv.log(ctx).Error("Failed to update mood entry", slog.Int64("ownerID", ownerID), slog.Int64("moodID", input.Uid), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update mood entry")
	}

	srv.log(ctx).Debug("Mood entry updated", slog.Int64("ownerID", ownerID), slog.Int64("moodID", mood.Uid))

	return usecase.ToMoodOutput(mood), nil
}

// DeleteMood removes one of the owner's entries.
func (srv *moodService) DeleteMood(ctx context.Context, ownerID, moodID int64) error {
	if err := srv.moodRepo.Delete(ctx, ownerID, moodID); err != nil {
		if errors.Is(err, repository.ErrMoodNotFound) {
			return domainerrors.ErrMoodNotFound
		}

		srv.log(ctx).Error("Failed to delete mood entry", slog.Int64("ownerID", ownerID), slog.Int64("moodID", moodID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete mood entry")
	}

	srv.log(ctx).Debug("Mood entry deleted", slog.Int64("ownerID", ownerID), slog.Int64("moodID", moodID))

	return nil
}

func (srv *moodService) validateFields(score int16, emotions, description string) error {
	if score < entity.MoodScoreMin || score > entity.MoodScoreMax {
		return domainerrors.ErrValidationFailed.WithDetails("score must be between 1 and 5")
	}
	if len(emotions) > srv.emotionsMaxLen {
		return domainerrors.ErrValidationFailed.WithDetails("emotions list is too long")
	}
	if len(description) > srv.descMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails("description is too long")
	}

	return nil
}
