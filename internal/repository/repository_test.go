package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
	))
	return db
}

func mustTime() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func timeOffset(i int) time.Duration {
	return time.Duration(i) * time.Minute
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Name: "A", Email: "dup@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.User{Name: "B", Email: "dup@example.com", Password: "y"}
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeConflict))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUserRepositoryGetByEmailAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestProfileRepositoryUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "dev@example.com")

	created, err := repo.Upsert(ctx, &models.Profile{
		UserID: user.ID,
		Status: "Developer",
		Skills: []string{"Go", "SQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Developer", created.Status)
	assert.Equal(t, user.Email, created.User.Email)

	updated, err := repo.Upsert(ctx, &models.Profile{
		UserID:  user.ID,
		Status:  "Senior Developer",
		Skills:  []string{"Go"},
		Company: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Senior Developer", updated.Status)
	assert.Equal(t, "Acme", updated.Company)

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestProfileRepositoryExperienceNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "dev@example.com")

	_, err := repo.Upsert(ctx, &models.Profile{
		UserID: user.ID, Status: "Developer", Skills: []string{"Go"},
	})
	require.NoError(t, err)

	var profile *models.Profile
	for _, title := range []string{"First", "Second", "Third"} {
		profile, err = repo.AddExperience(ctx, user.ID, &models.Experience{
			Title: title, Company: "Acme", From: mustTime(),
		})
		require.NoError(t, err)
	}

	require.Len(t, profile.Experience, 3)
	assert.Equal(t, "Third", profile.Experience[0].Title)
	assert.Equal(t, "Second", profile.Experience[1].Title)
	assert.Equal(t, "First", profile.Experience[2].Title)
}

func TestProfileRepositoryRemoveExperience(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "dev@example.com")

	_, err := repo.Upsert(ctx, &models.Profile{
		UserID: user.ID, Status: "Developer", Skills: []string{"Go"},
	})
	require.NoError(t, err)

	profile, err := repo.AddExperience(ctx, user.ID, &models.Experience{
		Title: "Engineer", Company: "Acme", From: mustTime(),
	})
	require.NoError(t, err)
	expID := profile.Experience[0].ID

	// Unknown ID is not a silent no-op.
	_, err = repo.RemoveExperience(ctx, user.ID, expID+100)
	assert.True(t, models.IsCode(err, models.CodeNotFound))

	after, err := repo.RemoveExperience(ctx, user.ID, expID)
	require.NoError(t, err)
	assert.Empty(t, after.Experience)
}

func TestProfileRepositoryRemoveForeignExperience(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	for _, u := range []*models.User{owner, other} {
		_, err := repo.Upsert(ctx, &models.Profile{
			UserID: u.ID, Status: "Developer", Skills: []string{"Go"},
		})
		require.NoError(t, err)
	}

	profile, err := repo.AddExperience(ctx, owner.ID, &models.Experience{
		Title: "Engineer", Company: "Acme", From: mustTime(),
	})
	require.NoError(t, err)

	// Another user cannot remove the owner's entry; it looks absent to them.
	_, err = repo.RemoveExperience(ctx, other.ID, profile.Experience[0].ID)
	assert.True(t, models.IsCode(err, models.CodeNotFound))

	kept, err := repo.GetByUserID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, kept.Experience, 1)
}

func TestPostRepositoryListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "author@example.com")

	for i := 1; i <= 3; i++ {
		post := &models.Post{UserID: user.ID, Text: fmt.Sprintf("post %d", i)}
		require.NoError(t, repo.Create(ctx, post))
		// Distinct timestamps so ordering is deterministic.
		db.Model(post).Update("created_at", mustTime().Add(timeOffset(i)))
	}

	posts, err := repo.List(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "post 3", posts[0].Text)
	assert.Equal(t, "post 1", posts[2].Text)
}

func TestPostRepositoryLikeGuards(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")
	fan := createTestUser(t, db, "fan@example.com")

	post := &models.Post{UserID: author.ID, Text: "hello"}
	require.NoError(t, repo.Create(ctx, post))

	liked, err := repo.Like(ctx, post.ID, fan.ID)
	require.NoError(t, err)
	assert.Len(t, liked.Likes, 1)

	_, err = repo.Like(ctx, post.ID, fan.ID)
	assert.True(t, models.IsCode(err, models.CodeAlreadyLiked))

	unliked, err := repo.Unlike(ctx, post.ID, fan.ID)
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)

	_, err = repo.Unlike(ctx, post.ID, fan.ID)
	assert.True(t, models.IsCode(err, models.CodeNotLiked))

	_, err = repo.Like(ctx, 999, fan.ID)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestPostRepositoryDeleteByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	leaver := createTestUser(t, db, "leaver@example.com")
	stayer := createTestUser(t, db, "stayer@example.com")

	require.NoError(t, repo.Create(ctx, &models.Post{UserID: leaver.ID, Text: "mine"}))
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: leaver.ID, Text: "also mine"}))
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: stayer.ID, Text: "keep me"}))

	require.NoError(t, repo.DeleteByUserID(ctx, leaver.ID))

	posts, err := repo.List(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "keep me", posts[0].Text)
}
