package repositories

import (
	"github.com/codetok-app/backend/internal/models"
	"gorm.io/gorm"
)

// FavoriteRepository defines the interface for favorite reads
type FavoriteRepository interface {
	IsProjectFavorited(userID uint, projectID string) (bool, error)
	GetFavoritesByUser(userID uint) ([]models.Favorite, error)
}

// PostgresFavoriteRepository implements FavoriteRepository
type PostgresFavoriteRepository struct {
	db *gorm.DB
}

func NewPostgresFavoriteRepository(db *gorm.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

// IsProjectFavorited checks if a user has bookmarked a specific project
func (r *PostgresFavoriteRepository) IsProjectFavorited(userID uint, projectID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).Where("user_id = ? AND project_id = ?", userID, projectID).Count(&count).Error
	return count > 0, err
}

// GetFavoritesByUser retrieves a user's bookmarks, newest first
func (r *PostgresFavoriteRepository) GetFavoritesByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}
