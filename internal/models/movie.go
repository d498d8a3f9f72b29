package models

import (
	"time"
)

// Movie is a persisted catalog entity. Rows ingested from Pexels carry a
// namespaced id ("px-<numeric id>") so they never collide with locally
// authored ids.
type Movie struct {
	ID           string  `gorm:"primaryKey;size:64" json:"id" example:"px-3571264"`
	Title        string  `gorm:"not null;index" json:"title" example:"Video 3571264 by Enrique Hoyos"`
	ThumbnailURL string  `json:"thumbnail_url" example:"https://images.pexels.com/videos/3571264/free-video-3571264.jpg"`
	Genre        string  `gorm:"index" json:"genre" example:"terror"`
	Source       *string `json:"source,omitempty" example:"https://videos.pexels.com/video-files/3571264/3571264-sd.mp4"`
	Director     *string `json:"director,omitempty" example:"Enrique Hoyos"`
	// Rating is the community average, nil until at least one user rating
	// exists. Never stored below 1.0.
	Rating          *float64  `gorm:"check:rating >= 1" json:"rating,omitempty" example:"4.2"`
	SuggestedRating *float64  `json:"suggested_rating,omitempty" example:"3.7"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// UserMovie links one user to one movie. Favorite and rating are tri-state:
// nil means the user never expressed that preference.
type UserMovie struct {
	UserID     string    `gorm:"primaryKey;size:64" json:"user_id"`
	MovieID    string    `gorm:"primaryKey;size:64" json:"movie_id"`
	IsFavorite *bool     `json:"is_favorite"`
	Rating     *float64  `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Movie *Movie `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
}

func (UserMovie) TableName() string {
	return "user_movies"
}
