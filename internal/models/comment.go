package models

import "gorm.io/gorm"

// Comment represents a comment on a project. ParentID, when set, must
// reference a top-level comment (ParentID == nil) of the same project; the
// depth limit is enforced at write time so the two-level read path is exact.
type Comment struct {
	gorm.Model
	ProjectID string `json:"project_id" gorm:"size:36;index"`
	UserID    uint   `json:"user_id" gorm:"index"`
	ParentID  *uint  `json:"parent_id,omitempty" gorm:"index"`
	Content   string `json:"content"`
}

// CommentThread is a comment enriched with its author's public profile and,
// for top-level comments, its direct replies.
type CommentThread struct {
	Comment
	Author  UserCompact     `json:"author"`
	Replies []CommentThread `json:"replies"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=500"`
	ParentID *uint  `json:"parent_id,omitempty"`
}
