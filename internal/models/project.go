package models

import "time"

// Project is the metadata record of a shared code project (PostgreSQL).
// The code payload itself lives in MongoDB as a ProjectFiles document.
type Project struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"` // UUID
	UserID        uint      `json:"user_id" gorm:"index"`         // Owner
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	MainFile      string    `json:"main_file"`
	LikesCount    int       `json:"likes_count" gorm:"default:0"`
	CommentsCount int       `json:"comments_count" gorm:"default:0"`
	Views         int       `json:"views" gorm:"default:0"`
	IsPublic      bool      `json:"is_public" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectFile is a single source file inside a project bundle
type ProjectFile struct {
	Filename string `json:"filename" bson:"filename" validate:"required,max=255"`
	Content  string `json:"content" bson:"content" validate:"required"`
	Language string `json:"language,omitempty" bson:"language,omitempty"`
}

// ProjectFiles is the code bundle of a project stored in MongoDB
type ProjectFiles struct {
	ProjectID string        `json:"project_id" bson:"project_id"`
	Files     []ProjectFile `json:"files" bson:"files"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// CreateProjectRequest defines the request body for uploading a new project
type CreateProjectRequest struct {
	Title       string        `json:"title" validate:"required,min=1,max=100"`
	Description string        `json:"description,omitempty" validate:"omitempty,max=1000"`
	MainFile    string        `json:"main_file,omitempty" validate:"omitempty,max=255"`
	IsPublic    *bool         `json:"is_public,omitempty"`
	Files       []ProjectFile `json:"files" validate:"required,min=1,dive"`
}
