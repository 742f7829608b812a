package models

import "time"

// Like represents a like on a project. The composite unique index makes the
// at-most-one-row-per-pair invariant a storage guarantee rather than a
// check-then-act convention.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_project_like"`
	ProjectID string    `json:"project_id" gorm:"size:36;index;uniqueIndex:idx_user_project_like"`
	CreatedAt time.Time `json:"created_at"`
}
