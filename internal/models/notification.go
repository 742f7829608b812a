package models

import "time"

// Notification types produced by the engagement fan-out
const (
	NotificationTypeLike     = "like"
	NotificationTypeComment  = "comment"
	NotificationTypeReply    = "reply"
	NotificationTypeFollow   = "follow"
	NotificationTypeFavorite = "favorite"
)

// Entity types a notification can reference
const (
	EntityTypeProject = "project"
	EntityTypeComment = "comment"
	EntityTypeUser    = "user"
)

// Notification represents a user notification (PostgreSQL)
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:20;index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	EntityID    string    `json:"entity_id"`                  // project UUID, comment ID, or user ID
	EntityType  string    `json:"entity_type" gorm:"size:20"` // project, comment, user
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
