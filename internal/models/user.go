package models

// User represents an author account. Articles and comments reference users
// by username, not by a foreign object.
type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `json:"avatar_url"`
}
