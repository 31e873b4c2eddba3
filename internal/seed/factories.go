// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is assigned to every seeded account.
const DefaultPassword = "password123"

var statuses = []string{
	"Developer",
	"Junior Developer",
	"Senior Developer",
	"Manager",
	"Student or Learning",
	"Instructor or Teacher",
	"Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "Rust", "SQL",
	"HTML", "CSS", "React", "Vue", "Docker", "Kubernetes",
	"PostgreSQL", "Redis", "GraphQL", "AWS",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a faked identity and the default password.
func (f *Factory) CreateUser() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(fmt.Sprintf("%s.%d@%s",
		gofakeit.Username(), f.rand.Intn(100000), gofakeit.DomainName()))

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: string(hashed),
		Avatar:   models.GravatarURL(email),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a developer profile for the user, populated with a
// random status, skill set, and a couple of history entries.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Bio:            gofakeit.Sentence(12),
		Status:         statuses[f.rand.Intn(len(statuses))],
		GithubUsername: gofakeit.Username(),
		Skills:         f.pickSkills(),
		Social: models.SocialLinks{
			Twitter:  "https://twitter.com/" + gofakeit.Username(),
			Linkedin: "https://linkedin.com/in/" + gofakeit.Username(),
		},
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+f.rand.Intn(3); i++ {
		if err := f.addExperience(profile); err != nil {
			return nil, err
		}
	}
	if err := f.addEducation(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (f *Factory) pickSkills() []string {
	n := 3 + f.rand.Intn(5)
	picked := make([]string, 0, n)
	for _, i := range f.rand.Perm(len(skillPool))[:n] {
		picked = append(picked, skillPool[i])
	}
	return picked
}

func (f *Factory) addExperience(profile *models.Profile) error {
	from := gofakeit.DateRange(
		time.Now().AddDate(-8, 0, 0), time.Now().AddDate(-1, 0, 0))
	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Current:     f.rand.Intn(3) == 0,
		Description: gofakeit.Sentence(10),
	}
	if !exp.Current {
		to := gofakeit.DateRange(from, time.Now())
		exp.To = &to
	}
	return f.db.Create(exp).Error
}

func (f *Factory) addEducation(profile *models.Profile) error {
	from := time.Now().AddDate(-10, 0, 0)
	to := from.AddDate(4, 0, 0)
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
	}
	return f.db.Create(edu).Error
}

// CreatePost persists a post authored by the user, with a creation time
// spread over the past maxDays days.
func (f *Factory) CreatePost(user *models.User, maxDays int) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 90
	}
	post := &models.Post{
		UserID: user.ID,
		Text:   gofakeit.Paragraph(1, 3, 8, " "),
		Name:   user.Name,
		Avatar: user.Avatar,
		CreatedAt: time.Now().
			Add(-time.Duration(f.rand.Intn(maxDays*24*60)) * time.Minute),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// LikePost records a like if the user has not already liked the post.
func (f *Factory) LikePost(user *models.User, post *models.Post) error {
	var count int64
	f.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", post.ID, user.ID).
		Count(&count)
	if count > 0 {
		return nil
	}
	return f.db.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error
}
