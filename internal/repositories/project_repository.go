package repositories

import (
	"github.com/codetok-app/backend/internal/models"
	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project metadata operations.
// The denormalized counters on a project are adjusted only by the engagement
// service, inside the same transaction as the join-row write.
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	GetProjectByID(id string) (*models.Project, error)
	GetTrending(limit int) ([]models.Project, error)
	GetProjectsByUserID(userID uint) ([]models.Project, error)
	IncrementViews(id string) error
}

// PostgresProjectRepository implements ProjectRepository for PostgreSQL
type PostgresProjectRepository struct {
	db *gorm.DB
}

// NewPostgresProjectRepository creates a new PostgresProjectRepository
func NewPostgresProjectRepository(db *gorm.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

// CreateProject creates a new project record in PostgreSQL
func (r *PostgresProjectRepository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetProjectByID retrieves a project by ID from PostgreSQL
func (r *PostgresProjectRepository) GetProjectByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// GetTrending retrieves public projects ordered by like count
func (r *PostgresProjectRepository) GetTrending(limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("is_public = ?", true).
		Order("likes_count DESC, created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// GetProjectsByUserID retrieves all projects owned by a user
func (r *PostgresProjectRepository) GetProjectsByUserID(userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// IncrementViews bumps the view counter for a project
func (r *PostgresProjectRepository) IncrementViews(id string) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
