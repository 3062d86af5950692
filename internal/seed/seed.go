// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"time"

	"newsdesk/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumArticles int
	NumComments int
}

// Topics every environment gets. Articles always attach to one of these.
var fixtureTopics = []models.Topic{
	{Slug: "coding", Description: "Code is love, code is life"},
	{Slug: "football", Description: "FOOTIE!"},
	{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
}

// A few stable users so dev logins and examples stay predictable.
var fixtureUsers = []models.User{
	{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
	{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
}

// Seeder populates the database with fixtures and generated content.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new Seeder.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded content, children before parents.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"comments", "articles", "users", "topics"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Run seeds topics, users, articles and comments per the options.
func (s *Seeder) Run(opts Options) error {
	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return err
	}

	topics, err := s.seedTopics()
	if err != nil {
		return err
	}

	articles, err := s.seedArticles(opts.NumArticles, topics, users)
	if err != nil {
		return err
	}

	return s.seedComments(opts.NumComments, articles, users)
}

func (s *Seeder) seedTopics() ([]models.Topic, error) {
	topics := make([]models.Topic, len(fixtureTopics))
	copy(topics, fixtureTopics)

	for i := range topics {
		if err := s.db.Create(&topics[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to seed topic %s: %w", topics[i].Slug, err)
		}
	}
	return topics, nil
}

func (s *Seeder) seedUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, len(fixtureUsers)+n)
	users = append(users, fixtureUsers...)

	for i := 0; i < n; i++ {
		users = append(users, models.User{
			Username:  fmt.Sprintf("%s_%d", gofakeit.Username(), i),
			Name:      gofakeit.Name(),
			AvatarURL: gofakeit.ImageURL(200, 200),
		})
	}

	for i := range users {
		if err := s.db.Create(&users[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", users[i].Username, err)
		}
	}
	return users, nil
}

func (s *Seeder) seedArticles(n int, topics []models.Topic, users []models.User) ([]models.Article, error) {
	now := time.Now()
	articles := make([]models.Article, 0, n)

	for i := 0; i < n; i++ {
		article := models.Article{
			Title:     gofakeit.Sentence(gofakeit.Number(3, 8)),
			Topic:     topics[gofakeit.Number(0, len(topics)-1)].Slug,
			Author:    users[gofakeit.Number(0, len(users)-1)].Username,
			Body:      gofakeit.Paragraph(2, 4, 12, " "),
			Votes:     gofakeit.Number(-10, 150),
			CreatedAt: gofakeit.DateRange(now.AddDate(-1, 0, 0), now),
		}
		if err := s.db.Create(&article).Error; err != nil {
			return nil, fmt.Errorf("failed to seed article: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func (s *Seeder) seedComments(n int, articles []models.Article, users []models.User) error {
	if len(articles) == 0 {
		return nil
	}

	now := time.Now()
	for i := 0; i < n; i++ {
		article := articles[gofakeit.Number(0, len(articles)-1)]
		comment := models.Comment{
			ArticleID: article.ArticleID,
			Author:    users[gofakeit.Number(0, len(users)-1)].Username,
			Body:      gofakeit.Sentence(gofakeit.Number(5, 20)),
			Votes:     gofakeit.Number(-5, 40),
			// Comments never predate their article.
			CreatedAt: gofakeit.DateRange(article.CreatedAt, now),
		}
		if err := s.db.Create(&comment).Error; err != nil {
			return fmt.Errorf("failed to seed comment: %w", err)
		}
	}
	return nil
}
