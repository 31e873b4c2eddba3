// Command main runs the database seeder for DevConnect.
package main

import (
	"flag"
	"log"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedCommunity(*numUsers)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	if err := s.SeedEngagement(users, *numPosts); err != nil {
		log.Fatalf("Engagement seeding failed: %v", err)
	}

	log.Printf("Done. All seeded users have the password %q", seed.DefaultPassword)
}
