package repositories

import (
	"testing"

	"github.com/codetok-app/backend/internal/models"
)

// Local accounts carry no Firebase UID; the unique index must not treat two
// NULLs as a collision.
func TestCreateMultipleLocalUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresUserRepository(db)

	for _, name := range []string{"alice", "bob", "carol"} {
		user := &models.User{Name: name, Email: name + "@example.com"}
		if err := repo.CreateUser(user); err != nil {
			t.Fatalf("failed to create local user %s: %v", name, err)
		}
		if user.FirebaseUID != nil {
			t.Fatalf("expected nil firebase uid for local user %s", name)
		}
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 users, got %d", count)
	}
}

func TestGetUserByFirebaseUID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresUserRepository(db)

	createTestUser(t, db, "local")

	uid := "firebase-uid-1"
	linked := &models.User{Name: "linked", Email: "linked@example.com", FirebaseUID: &uid}
	if err := repo.CreateUser(linked); err != nil {
		t.Fatalf("failed to create linked user: %v", err)
	}

	got, err := repo.GetUserByFirebaseUID(uid)
	if err != nil {
		t.Fatalf("failed to look up user by firebase uid: %v", err)
	}
	if got.ID != linked.ID {
		t.Fatalf("expected user %d, got %d", linked.ID, got.ID)
	}

	duplicate := &models.User{Name: "dupe", Email: "dupe@example.com", FirebaseUID: &uid}
	if err := repo.CreateUser(duplicate); err == nil {
		t.Fatal("expected unique constraint error for duplicate firebase uid")
	}
}
