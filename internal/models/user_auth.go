package models

import "time"

// UserAuth stores a user's password hash. It is never soft-deleted and
// never serialized to clients.
type UserAuth struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Secret    string    `gorm:"type:varchar(100);not null" json:"-"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
