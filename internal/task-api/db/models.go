package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents a tracked unit of requested work. Tasks are created once
// and read many times; no exposed operation updates or deletes them.
type Task struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Type      string    `json:"type" gorm:"index;not null"`        // e.g. optimize_route, generate_report
	Payload   string    `json:"payload" gorm:"type:json;not null"` // Store JSON string, opaque to the service
	Status    string    `json:"status" gorm:"index;default:pending"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when the caller did not set one.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = "pending"
	}
	return nil
}
