package repositories

import (
	"github.com/codetok-app/backend/internal/models"
	"gorm.io/gorm"
)

// ShareRepository defines the interface for share ledger reads
type ShareRepository interface {
	GetSharesCountByProjectID(projectID string) (int64, error)
	GetShareCountsByPlatform(projectID string) (map[string]int64, error)
}

// PostgresShareRepository implements ShareRepository
type PostgresShareRepository struct {
	db *gorm.DB
}

func NewPostgresShareRepository(db *gorm.DB) *PostgresShareRepository {
	return &PostgresShareRepository{db: db}
}

// GetSharesCountByProjectID retrieves the total share count for a project
func (r *PostgresShareRepository) GetSharesCountByProjectID(projectID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Share{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// GetShareCountsByPlatform breaks the share count down per platform
func (r *PostgresShareRepository) GetShareCountsByPlatform(projectID string) (map[string]int64, error) {
	type platformCount struct {
		Platform string
		Count    int64
	}
	var rows []platformCount
	err := r.db.Model(&models.Share{}).
		Select("platform, COUNT(*) as count").
		Where("project_id = ?", projectID).
		Group("platform").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, pc := range rows {
		counts[pc.Platform] = pc.Count
	}
	return counts, nil
}
