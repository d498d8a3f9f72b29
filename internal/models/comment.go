package models

import "time"

// Comment lives independently of the user_movie row it references: editing
// or deleting the favorite/rating state never cascades here.
type Comment struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	UserID  string `gorm:"index:idx_comments_user_movie;not null" json:"user_id"`
	MovieID string `gorm:"index:idx_comments_user_movie;index;not null" json:"movie_id"`
	Content string `gorm:"type:text" json:"content" example:"Great cinematography"`
	// Avatar is the commenter's initials, derived once at creation time.
	Avatar    string    `gorm:"size:8" json:"avatar" example:"JD"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
