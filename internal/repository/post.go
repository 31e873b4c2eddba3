package repository

import (
	"context"
	"errors"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	Delete(ctx context.Context, id uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
	Like(ctx context.Context, postID, userID uint) (*models.Post, error)
	Unlike(ctx context.Context, postID, userID uint) (*models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("Likes").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteByUserID removes every post authored by the user. Used by the
// account-deletion cascade.
func (r *postRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Like records the caller's like. Liking twice is rejected by the unique
// (post_id, user_id) index, so the guard needs no extra locking.
func (r *postRepository) Like(ctx context.Context, postID, userID uint) (*models.Post, error) {
	if _, err := r.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	like := models.Like{PostID: postID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewAlreadyLikedError()
		}
		return nil, models.NewInternalError(err)
	}

	return r.GetByID(ctx, postID)
}

// Unlike removes the caller's like. Removing a like that was never placed is
// rejected, mirroring the Like guard.
func (r *postRepository) Unlike(ctx context.Context, postID, userID uint) (*models.Post, error) {
	if _, err := r.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotLikedError()
	}

	return r.GetByID(ctx, postID)
}
