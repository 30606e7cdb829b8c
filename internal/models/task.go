package models

import (
	"time"

	"gorm.io/gorm"
)

// Task belongs to a Project; its effective owner is the project's user.
// A non-nil FinishDate locks the task against edits and deletion.
type Task struct {
	ID              uint64         `gorm:"primarykey" json:"id"`
	ProjectID       uint64         `gorm:"not null" json:"project_id"`
	Name            string         `gorm:"type:varchar(75);not null" json:"name"`
	Description     string         `gorm:"type:varchar(300);default:''" json:"description"`
	TerminationDate *time.Time     `gorm:"type:date" json:"termination_date"`
	FinishDate      *time.Time     `gorm:"type:date" json:"finish_date"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
}

// Finished reports whether the task is locked for editing.
func (t *Task) Finished() bool {
	return t.FinishDate != nil
}
