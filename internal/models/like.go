package models

import "time"

// Like records a user's like on a post. The (PostID, UserID) pair is unique,
// so the store itself guarantees one like per user per post.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
