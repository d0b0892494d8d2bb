package repository

import (
	"context"

	"gorm.io/gorm"

	"disasterhub/internal/model"
)

// VolunteerProfileRepository defines volunteer profile persistence operations.
// Profiles are addressed by the owning user's id.
type VolunteerProfileRepository interface {
	Create(ctx context.Context, profile *model.VolunteerProfile) error
	FindByUserID(ctx context.Context, userID uint) (*model.VolunteerProfile, error)
	List(ctx context.Context, availability model.AvailabilityStatus) ([]model.VolunteerProfile, error)
	UpdateAvailability(ctx context.Context, userID uint, status model.AvailabilityStatus) error
	// IncrementCompletedTasks adds one in a single UPDATE. It returns
	// gorm.ErrRecordNotFound if the user has no profile.
	IncrementCompletedTasks(ctx context.Context, userID uint) error
}

type volunteerProfileRepository struct {
	db *gorm.DB
}

// NewVolunteerProfileRepository creates a new volunteer profile repository.
func NewVolunteerProfileRepository(db *gorm.DB) VolunteerProfileRepository {
	return &volunteerProfileRepository{db: db}
}

func (r *volunteerProfileRepository) Create(ctx context.Context, profile *model.VolunteerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *volunteerProfileRepository) FindByUserID(ctx context.Context, userID uint) (*model.VolunteerProfile, error) {
	var profile model.VolunteerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns all profiles, or only those with the given availability when it is non-empty.
func (r *volunteerProfileRepository) List(ctx context.Context, availability model.AvailabilityStatus) ([]model.VolunteerProfile, error) {
	q := r.db.WithContext(ctx).Model(&model.VolunteerProfile{})
	if availability != "" {
		q = q.Where("availability = ?", availability)
	}

	var profiles []model.VolunteerProfile
	if err := q.Order("id").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *volunteerProfileRepository) UpdateAvailability(ctx context.Context, userID uint, status model.AvailabilityStatus) error {
	return r.db.WithContext(ctx).Model(&model.VolunteerProfile{}).
		Where("user_id = ?", userID).
		Update("availability", status).Error
}

func (r *volunteerProfileRepository) IncrementCompletedTasks(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Model(&model.VolunteerProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn("completed_tasks", gorm.Expr("completed_tasks + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
