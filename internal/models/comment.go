package models

import "time"

// Comment represents a comment on an article. Comments are the only entity
// that supports hard deletion.
type Comment struct {
	CommentID uint      `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	ArticleID uint      `gorm:"column:article_id;not null;index" json:"article_id"`
	Author    string    `gorm:"not null" json:"author"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
