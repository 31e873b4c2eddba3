package models

import "time"

// SocialLinks holds the optional social network URLs on a profile.
// Stored as embedded columns with a social_ prefix.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile is a user's public developer profile. Each user owns at most one
// profile, enforced by the unique index on UserID.
type Profile struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `gorm:"not null" json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `gorm:"serializer:json" json:"skills"`
	Social         SocialLinks  `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education      []Education  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Experience is a work history entry embedded in a profile. Entries are
// serialized newest-first (descending ID), matching prepend-on-add semantics.
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProfileID   uint       `gorm:"not null;index" json:"-"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is a schooling entry embedded in a profile, ordered like Experience.
type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProfileID    uint       `gorm:"not null;index" json:"-"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `gorm:"not null" json:"fieldofstudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}
