// Command main runs the database seeder for newsdesk.
package main

import (
	"flag"
	"log"

	"newsdesk/internal/config"
	"newsdesk/internal/database"
	"newsdesk/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 30, "Number of generated users (on top of fixtures)")
	numArticles := flag.Int("articles", 120, "Number of articles to create")
	numComments := flag.Int("comments", 600, "Number of comments to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d articles, %d comments, clean=%v\n",
		*numUsers, *numArticles, *numComments, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	s := seed.NewSeeder(db)
	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(seed.Options{
		NumUsers:    *numUsers,
		NumArticles: *numArticles,
		NumComments: *numComments,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
