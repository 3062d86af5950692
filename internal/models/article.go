package models

import "time"

// Article represents a published article in NewsDesk.
type Article struct {
	ArticleID uint      `gorm:"primaryKey;column:article_id" json:"article_id"`
	Title     string    `gorm:"not null" json:"title"`
	Topic     string    `gorm:"not null;index" json:"topic"`
	Author    string    `gorm:"not null" json:"author"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	// CommentCount is never persisted; it is computed at query time by
	// counting the article's comments.
	CommentCount int `gorm:"->;-:migration" json:"comment_count"`
}
