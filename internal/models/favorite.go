package models

import "time"

// Favorite represents a bookmarked project; same uniqueness invariant as Like
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_project_favorite"`
	ProjectID string    `json:"project_id" gorm:"size:36;index;uniqueIndex:idx_user_project_favorite"`
	CreatedAt time.Time `json:"created_at"`
}
