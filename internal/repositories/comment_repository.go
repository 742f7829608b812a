package repositories

import (
	"github.com/codetok-app/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment reads
type CommentRepository interface {
	GetCommentByID(id uint) (*models.Comment, error)
	GetThreadsByProjectID(projectID string) ([]models.CommentThread, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// GetCommentByID retrieves a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetThreadsByProjectID returns the two-level comment tree for a project:
// top-level comments newest first, each with its direct replies oldest first,
// every row enriched with its author's public profile. Ordering is done in
// the queries, not in the client.
func (r *PostgresCommentRepository) GetThreadsByProjectID(projectID string) ([]models.CommentThread, error) {
	var topLevel []models.Comment
	if err := r.db.Where("project_id = ? AND parent_id IS NULL", projectID).
		Order("created_at DESC").
		Find(&topLevel).Error; err != nil {
		return nil, err
	}

	var replies []models.Comment
	if err := r.db.Where("project_id = ? AND parent_id IS NOT NULL", projectID).
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		return nil, err
	}

	authors, err := r.authorsFor(append(topLevel, replies...))
	if err != nil {
		return nil, err
	}

	repliesByParent := make(map[uint][]models.CommentThread)
	for _, reply := range replies {
		thread := models.CommentThread{
			Comment: reply,
			Author:  authors[reply.UserID],
			Replies: []models.CommentThread{},
		}
		repliesByParent[*reply.ParentID] = append(repliesByParent[*reply.ParentID], thread)
	}

	threads := make([]models.CommentThread, 0, len(topLevel))
	for _, comment := range topLevel {
		children := repliesByParent[comment.ID]
		if children == nil {
			children = []models.CommentThread{}
		}
		threads = append(threads, models.CommentThread{
			Comment: comment,
			Author:  authors[comment.UserID],
			Replies: children,
		})
	}
	return threads, nil
}

// authorsFor loads the public profiles of every distinct comment author
func (r *PostgresCommentRepository) authorsFor(comments []models.Comment) (map[uint]models.UserCompact, error) {
	authors := make(map[uint]models.UserCompact)
	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		if _, seen := authors[c.UserID]; !seen {
			authors[c.UserID] = models.UserCompact{}
			ids = append(ids, c.UserID)
		}
	}
	if len(ids) == 0 {
		return authors, nil
	}
	var users []models.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		authors[u.ID] = u.ToCompact()
	}
	return authors, nil
}
