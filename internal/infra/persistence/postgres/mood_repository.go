package postgres

import (
	"context"

	"sentimenta/internal/domain/entity"
	domainerrors "sentimenta/internal/domain/errors"
	"sentimenta/internal/domain/repository"
	"sentimenta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// moodRepository implements the repository.MoodRepository interface using GORM.
// Every single-row predicate includes the owning account id.
type moodRepository struct {
	db *gorm.DB
}

// NewMoodRepository is the constructor for moodRepository.
func NewMoodRepository(db *gorm.DB) repository.MoodRepository {
	return &moodRepository{db: db}
}

// Create persists a new mood entry.
func (repo *moodRepository) Create(ctx context.Context, mood *entity.MoodEntry) error {
	moodM := fromMoodDomain(mood)

	if err := repo.db.WithContext(ctx).Create(moodM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// The owning account vanished between authentication and insert.
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mood entry")
	}

	mood.Uid = moodM.Uid
	mood.CreatedAt = moodM.CreatedAt
	mood.UpdatedAt = moodM.UpdatedAt

	return nil
}

// ListByOwner returns all entries owned by ownerID, newest event date first.
func (repo *moodRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.MoodEntry, error) {
	var moodsM []*model.MoodModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date DESC").
		Find(&moodsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mood entries")
	}

	moods := make([]*entity.MoodEntry, 0, len(moodsM))
	for _, moodM := range moodsM {
		moods = append(moods, toMoodDomain(moodM))
	}

	return moods, nil
}

// FindByOwnerAndID retrieves a single entry by id, restricted to ownerID.
func (repo *moodRepository) FindByOwnerAndID(ctx context.Context, ownerID, id int64) (*entity.MoodEntry, error) {
	var moodM model.MoodModel
	err := repo.db.WithContext(ctx).
		Where("uid = ? AND user_id = ?", id, ownerID).
		First(&moodM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find mood entry")
	}

	return toMoodDomain(&moodM), nil
}

// Update modifies an existing entry, scoped to its owner.
func (repo *moodRepository) Update(ctx context.Context, mood *entity.MoodEntry) error {
	moodM := fromMoodDomain(mood)

	result := repo.db.WithContext(ctx).
		Model(&model.MoodModel{}).
		Where("uid = ? AND user_id = ?", mood.Uid, mood.UserID).
		Updates(map[string]any{
			"score":       moodM.Score,
			"emotions":    moodM.Emotions,
			"description": moodM.Description,
			"date":        moodM.Date,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update mood entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMoodNotFound
	}

	return nil
}

// Delete removes the entry with the given id if it is owned by ownerID.
func (repo *moodRepository) Delete(ctx context.Context, ownerID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("uid = ? AND user_id = ?", id, ownerID).
		Delete(&model.MoodModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete mood entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMoodNotFound
	}

	return nil
}

// toMoodDomain converts a GORM MoodModel to a domain MoodEntry entity.
func toMoodDomain(data *model.MoodModel) *entity.MoodEntry {
	if data == nil {
		return nil
	}

	return &entity.MoodEntry{
		Uid:         data.Uid,
		UserID:      data.UserID,
		Score:       data.Score,
		Emotions:    data.Emotions,
		Description: data.Description,
		Date:        data.Date,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromMoodDomain converts a domain MoodEntry entity to a GORM MoodModel for persistence.
func fromMoodDomain(data *entity.MoodEntry) *model.MoodModel {
	if data == nil {
		return nil
	}

	return &model.MoodModel{
		Uid:         data.Uid,
		UserID:      data.UserID,
		Score:       data.Score,
		Emotions:    data.Emotions,
		Description: data.Description,
		Date:        data.Date,
	}
}
