package repositories

import (
	"testing"
	"time"

	"github.com/codetok-app/backend/internal/models"
	"gorm.io/gorm"
)

func createTestComment(t *testing.T, db *gorm.DB, userID uint, projectID string, parentID *uint, content string, createdAt time.Time) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Model:     gorm.Model{CreatedAt: createdAt},
		ProjectID: projectID,
		UserID:    userID,
		ParentID:  parentID,
		Content:   content,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	return comment
}

func TestGetThreadsByProjectID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	projectID := "11111111-2222-3333-4444-555555555555"

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := createTestComment(t, db, alice.ID, projectID, nil, "first comment", base)
	newer := createTestComment(t, db, bob.ID, projectID, nil, "second comment", base.Add(time.Hour))
	replyA := createTestComment(t, db, bob.ID, projectID, &older.ID, "reply A", base.Add(2*time.Hour))
	replyB := createTestComment(t, db, alice.ID, projectID, &older.ID, "reply B", base.Add(3*time.Hour))
	// A comment on another project must not leak into the listing
	createTestComment(t, db, alice.ID, "other-project", nil, "elsewhere", base)

	threads, err := repo.GetThreadsByProjectID(projectID)
	if err != nil {
		t.Fatalf("GetThreadsByProjectID failed: %v", err)
	}

	if len(threads) != 2 {
		t.Fatalf("top-level threads = %d, want 2", len(threads))
	}
	// Newest top-level comment first
	if threads[0].ID != newer.ID || threads[1].ID != older.ID {
		t.Errorf("top-level order = [%d, %d], want [%d, %d]", threads[0].ID, threads[1].ID, newer.ID, older.ID)
	}
	if threads[0].Author.Name != "bob" || threads[1].Author.Name != "alice" {
		t.Errorf("authors = [%s, %s], want [bob, alice]", threads[0].Author.Name, threads[1].Author.Name)
	}

	// The comment with no replies carries an empty, non-nil slice
	if threads[0].Replies == nil || len(threads[0].Replies) != 0 {
		t.Errorf("replies of newer = %v, want empty", threads[0].Replies)
	}

	// Replies are attached to their parent, oldest first
	replies := threads[1].Replies
	if len(replies) != 2 {
		t.Fatalf("replies of older = %d, want 2", len(replies))
	}
	if replies[0].ID != replyA.ID || replies[1].ID != replyB.ID {
		t.Errorf("reply order = [%d, %d], want [%d, %d]", replies[0].ID, replies[1].ID, replyA.ID, replyB.ID)
	}
	if replies[0].Author.ID != bob.ID || replies[1].Author.ID != alice.ID {
		t.Errorf("reply authors = [%d, %d], want [%d, %d]", replies[0].Author.ID, replies[1].Author.ID, bob.ID, alice.ID)
	}
}

func TestGetThreadsByProjectIDEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db)

	threads, err := repo.GetThreadsByProjectID("missing-project")
	if err != nil {
		t.Fatalf("GetThreadsByProjectID failed: %v", err)
	}
	if len(threads) != 0 {
		t.Errorf("threads = %d, want 0", len(threads))
	}
}
