package seed

import (
	"log"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates demo data creation.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll wipes every seeded table, children first so no FK breaks.
func (s *Seeder) ClearAll() error {
	for _, m := range []any{
		&models.Like{},
		&models.Post{},
		&models.Experience{},
		&models.Education{},
		&models.Profile{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}
	log.Println("Database cleared")
	return nil
}

// SeedCommunity creates numUsers accounts, each with a profile, and returns
// them for further seeding.
func (s *Seeder) SeedCommunity(numUsers int) ([]*models.User, error) {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		if _, err := s.factory.CreateProfile(user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users with profiles", len(users))
	return users, nil
}

// SeedEngagement spreads numPosts posts across the users and sprinkles likes
// over them.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) error {
	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rand.Intn(len(users))]
		post, err := s.factory.CreatePost(author, 90)
		if err != nil {
			return err
		}
		posts = append(posts, post)
	}

	likes := 0
	for _, post := range posts {
		for i := 0; i < s.factory.rand.Intn(len(users)/2+1); i++ {
			fan := users[s.factory.rand.Intn(len(users))]
			if err := s.factory.LikePost(fan, post); err != nil {
				return err
			}
			likes++
		}
	}

	log.Printf("Seeded %d posts and %d likes", len(posts), likes)
	return nil
}
