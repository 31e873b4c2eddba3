package repository

import (
	"context"
	"errors"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations,
// including the experience/education sub-resources.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	DeleteByUserID(ctx context.Context, userID uint) error
	AddExperience(ctx context.Context, userID uint, exp *models.Experience) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error)
	AddEducation(ctx context.Context, userID uint, edu *models.Education) (*models.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error)
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withAssociations preloads the owning user and the sub-resource lists.
// Experience and education are ordered newest-first: entries are addressed by
// monotonically increasing IDs, so descending ID realizes prepend-on-add.
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("experiences.id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("educations.id DESC")
		})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := withAssociations(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile")
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := withAssociations(r.db.WithContext(ctx)).
		Order("profiles.created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// Upsert creates the caller's profile or updates it in place. At most one
// profile per user holds via the unique index on user_id; the update path
// never touches the experience/education rows.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	var existing models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if createErr := r.db.WithContext(ctx).Create(profile).Error; createErr != nil {
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return nil, models.NewConflictError("Profile already exists for this user")
			}
			return nil, models.NewInternalError(createErr)
		}
	case err != nil:
		return nil, models.NewInternalError(err)
	default:
		existing.Company = profile.Company
		existing.Website = profile.Website
		existing.Location = profile.Location
		existing.Bio = profile.Bio
		existing.Status = profile.Status
		existing.GithubUsername = profile.GithubUsername
		existing.Skills = profile.Skills
		existing.Social = profile.Social
		if saveErr := r.db.WithContext(ctx).Save(&existing).Error; saveErr != nil {
			return nil, models.NewInternalError(saveErr)
		}
	}

	return r.GetByUserID(ctx, profile.UserID)
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, userID uint, exp *models.Experience) (*models.Profile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp.ProfileID = profile.ID
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return r.GetByUserID(ctx, userID)
}

// RemoveExperience deletes the entry keyed by its ID, scoped to the caller's
// own profile. An ID that matches nothing is a NotFound, not a silent no-op;
// a foreign profile's entry looks identical to a missing one.
func (r *profileRepository) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profile.ID).
		Delete(&models.Experience{})
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Experience entry")
	}

	return r.GetByUserID(ctx, userID)
}

func (r *profileRepository) AddEducation(ctx context.Context, userID uint, edu *models.Education) (*models.Profile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu.ProfileID = profile.ID
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return r.GetByUserID(ctx, userID)
}

// RemoveEducation mirrors RemoveExperience for education entries.
func (r *profileRepository) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profile.ID).
		Delete(&models.Education{})
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Education entry")
	}

	return r.GetByUserID(ctx, userID)
}
