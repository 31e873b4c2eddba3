// Package models contains data structures for the application's domain models.
package models

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

// User represents a registered account. The password column holds a bcrypt
// hash and is never serialized. Rows are hard-deleted so a removed account
// frees its email for re-registration.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GravatarURL derives the Gravatar image URL for an email address
// (200px, PG-rated, identicon fallback).
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
