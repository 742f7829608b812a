package models

import "time"

// Share is an append-only record of a share event; every share click produces
// a new row, there is no uniqueness constraint and no counter on the project.
type Share struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	ProjectID string    `json:"project_id" gorm:"size:36;index"`
	Platform  string    `json:"platform" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordShareRequest defines the request body for logging a share event
type RecordShareRequest struct {
	Platform string `json:"platform" validate:"required,oneof=twitter facebook linkedin reddit copy_link embed"`
}
