package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email          string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone          string  `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Username       string  `gorm:"size:50;uniqueIndex;not null" json:"username"`
	HashedPassword string  `gorm:"size:255;not null" json:"-"`
	ProfilePicture *string `gorm:"size:512" json:"profilePicture"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
