package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Login     string         `gorm:"type:varchar(45);uniqueIndex;not null" json:"login"`
	FirstName string         `gorm:"type:varchar(75);not null" json:"first_name"`
	LastName  string         `gorm:"type:varchar(75);default:''" json:"last_name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Projects []Project `gorm:"foreignKey:UserID" json:"-"`
}
