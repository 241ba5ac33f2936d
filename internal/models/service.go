package models

import (
	"time"

	"github.com/lib/pq"
)

// Service is a listing owned by a user. The owner holds no back-reference.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceName        string         `gorm:"size:100;not null" json:"serviceName"`
	ServiceDescription string         `gorm:"type:text;not null" json:"serviceDescription"`
	AverageWaitingTime string         `gorm:"size:50" json:"averageWaitingTime"`
	ServiceLocation    string         `gorm:"size:255;not null" json:"serviceLocation"`
	Photos             pq.StringArray `gorm:"type:text[]" json:"photos"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
