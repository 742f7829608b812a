package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/codetok-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectFilesRepository defines the interface for project code bundles
type ProjectFilesRepository interface {
	SaveFiles(ctx context.Context, files *models.ProjectFiles) error
	GetFiles(ctx context.Context, projectID string) (*models.ProjectFiles, error)
	DeleteFiles(ctx context.Context, projectID string) error
}

// MongoProjectFilesRepository implements ProjectFilesRepository for MongoDB
type MongoProjectFilesRepository struct {
	collection *mongo.Collection
}

// NewMongoProjectFilesRepository creates a new MongoProjectFilesRepository
func NewMongoProjectFilesRepository(db *mongo.Database) *MongoProjectFilesRepository {
	return &MongoProjectFilesRepository{collection: db.Collection("project_files")}
}

// SaveFiles upserts the code bundle for a project in MongoDB
func (r *MongoProjectFilesRepository) SaveFiles(ctx context.Context, files *models.ProjectFiles) error {
	files.CreatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"project_id": files.ProjectID}, files, opts)
	return err
}

// GetFiles retrieves the code bundle for a project from MongoDB
func (r *MongoProjectFilesRepository) GetFiles(ctx context.Context, projectID string) (*models.ProjectFiles, error) {
	var files models.ProjectFiles
	err := r.collection.FindOne(ctx, bson.M{"project_id": projectID}).Decode(&files)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("project files not found")
		}
		return nil, err
	}
	return &files, nil
}

// DeleteFiles removes the code bundle for a project from MongoDB
func (r *MongoProjectFilesRepository) DeleteFiles(ctx context.Context, projectID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"project_id": projectID})
	return err
}
