package repositories

import (
	"github.com/codetok-app/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like reads. The toggle itself is a
// compound write owned by the engagement service.
type LikeRepository interface {
	HasUserLikedProject(userID uint, projectID string) (bool, error)
	GetLikesCountByProjectID(projectID string) (int64, error)
	GetLikedProjectIDs(userID uint, projectIDs []string) (map[string]bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// HasUserLikedProject checks if a user has liked a specific project
func (r *PostgresLikeRepository) HasUserLikedProject(userID uint, projectID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND project_id = ?", userID, projectID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCountByProjectID retrieves the count of likes for a specific project
func (r *PostgresLikeRepository) GetLikesCountByProjectID(projectID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikedProjectIDs returns which of the given projects the user has liked
func (r *PostgresLikeRepository) GetLikedProjectIDs(userID uint, projectIDs []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(projectIDs) == 0 {
		return result, nil
	}
	var likes []models.Like
	err := r.db.Where("user_id = ? AND project_id IN ?", userID, projectIDs).Find(&likes).Error
	if err != nil {
		return nil, err
	}
	for _, l := range likes {
		result[l.ProjectID] = true
	}
	return result, nil
}
