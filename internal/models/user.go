package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email" example:"john@example.com"`
	Name      string    `gorm:"not null" json:"name" example:"John"`
	Surname   string    `json:"surname" example:"Doe"`
	Age       int       `json:"age" example:"28"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
