package models

import "time"

// Post is a feed entry. The author's name and avatar are denormalized onto
// the post at creation time so the feed renders without joining users.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Text      string    `gorm:"not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}
